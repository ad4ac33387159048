//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"nuzlocke-tracker/internal/domain/chat"
	"nuzlocke-tracker/internal/handler/api"
	reqdto "nuzlocke-tracker/internal/handler/dto/request"
	resdto "nuzlocke-tracker/internal/handler/dto/response"
	"nuzlocke-tracker/internal/pkg/errs"
	"nuzlocke-tracker/internal/usecase/commands"
	"nuzlocke-tracker/internal/usecase/queries"
	"nuzlocke-tracker/tests/common/httptest"
	commandsmock "nuzlocke-tracker/tests/mock/commands"
	queriesmock "nuzlocke-tracker/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ChatHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockChatCommands
	mockQueries  *queriesmock.MockCommunityQueries
	userID       uuid.UUID
	groupID      uuid.UUID
	baseURL      string
}

func (s *ChatHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockChatCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCommunityQueries(s.mockCtrl)
	h := api.NewChatHandler(s.mockCommands, s.mockQueries)

	s.userID = uuid.New()
	s.groupID = uuid.New()
	s.baseURL = "/groups/" + s.groupID.String() + "/chat"

	g := s.router.Group("/groups/:groupId/chat", fakeAuth(s.userID))
	g.GET("", h.History)
	g.POST("", h.Send)
	g.DELETE("/:id", h.Delete)
}

func (s *ChatHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestChatHandlerSuite(t *testing.T) {
	suite.Run(t, new(ChatHandlerTestSuite))
}

func (s *ChatHandlerTestSuite) TestSend() {
	sentAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	s.Run("success: returns 201 Created with the stored message", func() {
		posted := &commands.ChatPosted{
			ID: uuid.New(), GroupID: s.groupID, UserID: s.userID, Username: "red", Body: "hi all", CreatedAt: sentAt,
		}
		s.mockCommands.EXPECT().SendMessage(gomock.Any(), s.groupID, s.userID, "hi all").Return(posted, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.baseURL, reqdto.ChatMessageRequest{Body: "hi all"}, testToken)

		var body resdto.ChatMessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(posted.ID.String(), body.ID)
		s.Equal("red", body.Username)
		s.Equal(sentAt.Unix(), body.CreatedAt)
	})

	s.Run("error: 400 Bad Request on missing or oversized body", func() {
		for _, req := range []reqdto.ChatMessageRequest{{Body: ""}, {Body: strings.Repeat("a", 1001)}} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.baseURL, req, testToken)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		}
	})

	s.Run("error: 400 Bad Request on a whitespace-only body", func() {
		s.mockCommands.EXPECT().SendMessage(gomock.Any(), s.groupID, s.userID, "   ").
			Return(nil, chat.ErrInvalidBody).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.baseURL, reqdto.ChatMessageRequest{Body: "   "}, testToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "1-1000 characters")
	})

	s.Run("error: 403 Forbidden for non-members", func() {
		s.mockCommands.EXPECT().SendMessage(gomock.Any(), s.groupID, s.userID, "hi").
			Return(nil, errs.ErrNotGroupMember).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.baseURL, reqdto.ChatMessageRequest{Body: "hi"}, testToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "not a member")
	})
}

func (s *ChatHandlerTestSuite) TestHistory() {
	s.Run("success: returns messages in chat order", func() {
		views := []*queries.ChatMessageView{
			{ID: uuid.New(), UserID: s.userID, Username: "red", Body: "first"},
			{ID: uuid.New(), UserID: uuid.New(), Username: "blue", Body: "second"},
		}
		s.mockQueries.EXPECT().ChatHistory(gomock.Any(), s.groupID, s.userID).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.baseURL, nil, testToken)

		var body []resdto.ChatMessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal("first", body[0].Body)
		s.Equal("blue", body[1].Username)
	})

	s.Run("error: 400 Bad Request for invalid group id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/groups/nope/chat", nil, testToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid group id")
	})
}

func (s *ChatHandlerTestSuite) TestDelete() {
	id := uuid.New()
	url := s.baseURL + "/" + id.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().DeleteMessage(gomock.Any(), s.groupID, id, s.userID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, testToken)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{"missing", errs.ErrMessageNotFound, http.StatusNotFound, "Message not found"},
			{"someone else's", errs.ErrNotMessageAuthor, http.StatusForbidden, "your own messages"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().DeleteMessage(gomock.Any(), s.groupID, id, s.userID).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, testToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
