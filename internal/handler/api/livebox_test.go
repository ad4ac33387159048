//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"nuzlocke-tracker/internal/domain/pokemon"
	"nuzlocke-tracker/internal/handler/api"
	resdto "nuzlocke-tracker/internal/handler/dto/response"
	"nuzlocke-tracker/internal/pkg/errs"
	"nuzlocke-tracker/internal/usecase/commands"
	"nuzlocke-tracker/internal/usecase/queries"
	"nuzlocke-tracker/tests/common/builder"
	"nuzlocke-tracker/tests/common/httptest"
	"nuzlocke-tracker/tests/common/testutil"
	commandsmock "nuzlocke-tracker/tests/mock/commands"
	queriesmock "nuzlocke-tracker/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LiveboxHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockLiveboxCommands
	mockQueries  *queriesmock.MockPokemonQueries
	userID       uuid.UUID
	groupID      uuid.UUID
	baseURL      string
}

func (s *LiveboxHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockLiveboxCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPokemonQueries(s.mockCtrl)
	h := api.NewLiveboxHandler(s.mockCommands, s.mockQueries)

	s.userID = uuid.New()
	s.groupID = uuid.New()
	s.baseURL = "/groups/" + s.groupID.String() + "/livebox"

	g := s.router.Group("/groups/:groupId/livebox", fakeAuth(s.userID))
	g.GET("", h.List)
	g.POST("", h.Add)
	g.DELETE("/:id", h.Remove)
	g.DELETE("/boxes/:box", h.ClearBox)
}

func (s *LiveboxHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLiveboxHandlerSuite(t *testing.T) {
	suite.Run(t, new(LiveboxHandlerTestSuite))
}

type testCaseLivebox struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestAdd
// ================================================================================

func (s *LiveboxHandlerTestSuite) TestAdd() {
	b := builder.NewPokemonBuilder().With(func(b *builder.PokemonBuilder) {
		b.UserID = s.userID
		b.GroupID = s.groupID
		b.Box = 2
	})
	reqBody := b.BuildAddLivingRequestDTO()
	living := b.BuildLiving()

	s.Run("success: returns 201 Created with the stored record", func() {
		s.mockCommands.EXPECT().AddLiving(gomock.Any(), commands.AddLivingRequest{
			GroupID: s.groupID,
			Species: "pikachu",
			Box:     2,
		}, s.userID).Return(living, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.baseURL, reqBody, testToken)

		var body resdto.LivingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(living.ID().String(), body.ID)
		s.Equal(2, body.BoxNumber)
		s.Equal("Pikachu", body.DisplayName)
		s.Equal(25, body.PokemonID)
		s.Equal([]string{"electric"}, body.Types)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseLivebox{
			{name: "box boundary OK (1)", mutate: testutil.Field("box_number", 1), expectCode: http.StatusCreated},
			{name: "box boundary OK (3)", mutate: testutil.Field("box_number", 3), expectCode: http.StatusCreated},
			{name: "box boundary invalid (0)", mutate: testutil.Field("box_number", 0), expectCode: http.StatusBadRequest},
			{name: "box boundary invalid (4)", mutate: testutil.Field("box_number", 4), expectCode: http.StatusBadRequest},
			{name: "missing field: name", mutate: testutil.Field("name", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: box_number", mutate: testutil.Field("box_number", nil), expectCode: http.StatusBadRequest},
			{name: "name too long", mutate: testutil.Field("name", strings.Repeat("a", 61)), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				if tc.expectCode == http.StatusCreated {
					s.mockCommands.EXPECT().AddLiving(gomock.Any(), gomock.Any(), s.userID).
						Return(living, nil).Times(1)
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.baseURL, requestMap, testToken)
				if tc.expectCode == http.StatusCreated {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
				}
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.baseURL, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 400 Bad Request for invalid group id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/groups/not-a-uuid/livebox", reqBody, testToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid group id")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{"unknown species", errs.Wrap(errs.ErrSpeciesNotFound, "lookup"), http.StatusNotFound, "Pokémon not found"},
			{"group missing", errs.ErrGroupNotFound, http.StatusNotFound, "Group not found"},
			{"not a member", errs.ErrNotGroupMember, http.StatusForbidden, "not a member"},
			{"duplicate", errs.ErrDuplicateLiving, http.StatusConflict, "already in that box"},
			{"invalid box from domain", pokemon.ErrInvalidBox, http.StatusBadRequest, "between 1 and 3"},
			{"catalog down", errs.Mark(errors.New("dial tcp"), errs.ErrCatalogUnavailable), http.StatusBadGateway, "unavailable"},
			{"database error", errors.New("database error"), http.StatusInternalServerError, "Internal server error"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().AddLiving(gomock.Any(), gomock.Any(), s.userID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.baseURL, reqBody, testToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *LiveboxHandlerTestSuite) TestList() {
	views := []*queries.LivingView{
		builder.NewPokemonBuilder().BuildLivingView(),
		builder.NewPokemonBuilder().With(func(b *builder.PokemonBuilder) {
			b.PokemonID = 4
			b.Name = "charmander"
			b.Box = 3
		}).BuildLivingView(),
	}

	s.Run("success: returns every record without filters", func() {
		s.mockQueries.EXPECT().ListLiving(gomock.Any(), s.groupID, queries.LivingFilters{}, s.userID).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.baseURL, nil, testToken)

		var body []resdto.LivingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal("pikachu", body[0].Name)
		s.Equal(3, body[1].BoxNumber)
	})

	s.Run("success: passes owner and box filters through", func() {
		owner := uuid.New()
		box := 3
		s.mockQueries.EXPECT().ListLiving(gomock.Any(), s.groupID, queries.LivingFilters{UserID: &owner, Box: &box}, s.userID).
			Return(views[1:], nil).Times(1)

		url := s.baseURL + "?user_id=" + owner.String() + "&box=3"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, testToken)

		var body []resdto.LivingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("success: empty list encodes as an array", func() {
		s.mockQueries.EXPECT().ListLiving(gomock.Any(), s.groupID, gomock.Any(), s.userID).
			Return([]*queries.LivingView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.baseURL, nil, testToken)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("error: 400 Bad Request on invalid filters", func() {
		for _, q := range []string{"?box=0", "?box=4", "?user_id=bogus"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.baseURL+q, nil, testToken)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
		}
	})

	s.Run("error: 403 Forbidden for non-members", func() {
		s.mockQueries.EXPECT().ListLiving(gomock.Any(), s.groupID, gomock.Any(), s.userID).
			Return(nil, errs.ErrNotGroupMember).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.baseURL, nil, testToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "not a member")
	})
}

// ================================================================================
// TestRemove
// ================================================================================

func (s *LiveboxHandlerTestSuite) TestRemove() {
	id := uuid.New()
	url := s.baseURL + "/" + id.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().RemoveLiving(gomock.Any(), s.groupID, id, s.userID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, testToken)
		s.Equal(http.StatusNoContent, rec.Code)
		s.Empty(rec.Body.String())
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, s.baseURL+"/invalid-uuid", nil, testToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{"record missing", errs.ErrRecordNotFound, http.StatusNotFound},
			{"someone else's record", errs.ErrNotRecordOwner, http.StatusForbidden},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().RemoveLiving(gomock.Any(), s.groupID, id, s.userID).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, testToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

// ================================================================================
// TestClearBox
// ================================================================================

func (s *LiveboxHandlerTestSuite) TestClearBox() {
	s.Run("success: reports how many records were removed", func() {
		s.mockCommands.EXPECT().ClearBox(gomock.Any(), s.groupID, 2, s.userID).Return(int64(4), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, s.baseURL+"/boxes/2", nil, testToken)

		var body resdto.ClearResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(4), body.Removed)
	})

	s.Run("success: an empty box reports zero", func() {
		s.mockCommands.EXPECT().ClearBox(gomock.Any(), s.groupID, 1, s.userID).Return(int64(0), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, s.baseURL+"/boxes/1", nil, testToken)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"removed":0}`, rec.Body.String())
	})

	s.Run("error: 400 Bad Request for a non-numeric box", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, s.baseURL+"/boxes/two", nil, testToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid box number")
	})

	s.Run("error: 400 Bad Request for an out of range box", func() {
		s.mockCommands.EXPECT().ClearBox(gomock.Any(), s.groupID, 9, s.userID).Return(int64(0), pokemon.ErrInvalidBox).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, s.baseURL+"/boxes/9", nil, testToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "between 1 and 3")
	})
}
