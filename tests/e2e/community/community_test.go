//go:build e2e

package community_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	nethttptest "net/http/httptest"
	"strings"
	"testing"
	"time"

	"nuzlocke-tracker/internal/handler/dto/request"
	"nuzlocke-tracker/internal/handler/dto/response"
	"nuzlocke-tracker/internal/handler/live"
	"nuzlocke-tracker/internal/usecase/commands"
	"nuzlocke-tracker/tests/common/authtest"
	"nuzlocke-tracker/tests/common/dbtest"
	"nuzlocke-tracker/tests/common/httptest"
	"nuzlocke-tracker/tests/e2e"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	challengesURL = "/api/groups/%s/challenges"
	challengeURL  = "/api/groups/%s/challenges/%s"
	chatURL       = "/api/groups/%s/chat"
	chatItemURL   = "/api/groups/%s/chat/%s"
	liveURL       = "/api/groups/%s/live"
)

type CommunitySuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *CommunitySuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *CommunitySuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestCommunitySuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(CommunitySuite))
}

func (s *CommunitySuite) TestChallenges() {
	s.Run("Normal case: members post, the board lists newest first, editors change it", func() {
		t := s.T()
		owner, author, other := uuid.New(), uuid.New(), uuid.New()
		groupID := dbtest.CreateTestGroup(t, s.DB, "Kanto", owner, "red", 20)
		dbtest.AddTestMember(t, s.DB, groupID, author, "blue", 20)
		dbtest.AddTestMember(t, s.DB, groupID, other, "green", 20)
		authorToken := s.jwt.GenerateToken(t, author, "")

		first := s.postChallenge(t, groupID, authorToken, request.ChallengeRequest{
			Title: "No items", Description: "No healing items in battle",
		})
		require.Equal(t, "medium", first.Difficulty)
		second := s.postChallenge(t, groupID, authorToken, request.ChallengeRequest{
			Title: "Solo", Description: "Only the starter", Reward: "1000 coins", Difficulty: "extreme",
		})

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(challengesURL, groupID), nil,
			s.jwt.GenerateToken(t, other, ""))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var board []response.ChallengeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &board))
		require.Len(t, board, 2)
		require.Equal(t, second.ID, board[0].ID, "newest first")

		edit := request.ChallengeRequest{Title: "No items at all", Description: "Not even between fights", Difficulty: "hard"}

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(challengeURL, groupID, first.ID), edit,
			s.jwt.GenerateToken(t, other, ""))
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "author or the group creator")

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(challengeURL, groupID, first.ID), edit,
			s.jwt.GenerateToken(t, owner, ""))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var updated response.ChallengeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
		require.Equal(t, "No items at all", updated.Title)
		require.Equal(t, author.String(), updated.CreatedBy)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(challengeURL, groupID, second.ID), nil, authorToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(challengeURL, groupID, second.ID), nil, authorToken)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Challenge not found")
	})

	s.Run("Error case: non-members can neither read nor post", func() {
		t := s.T()
		groupID := dbtest.CreateTestGroup(t, s.DB, "Kanto", uuid.New(), "red", 20)
		token := s.jwt.GenerateToken(t, uuid.New(), "")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(challengesURL, groupID), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "not a member")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(challengesURL, groupID),
			request.ChallengeRequest{Title: "x", Description: "y"}, token)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "not a member")
	})

	s.Run("Error case: a challenge id from another group reads as missing", func() {
		t := s.T()
		owner := uuid.New()
		kanto := dbtest.CreateTestGroup(t, s.DB, "Kanto", owner, "red", 20)
		johto := dbtest.CreateTestGroup(t, s.DB, "Johto", owner, "red", 20)
		token := s.jwt.GenerateToken(t, owner, "")

		c := s.postChallenge(t, kanto, token, request.ChallengeRequest{Title: "x", Description: "y"})

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(challengeURL, johto, c.ID), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Challenge not found")
	})
}

func (s *CommunitySuite) TestChat() {
	s.Run("Normal case: a REST message reaches every live session of the group", func() {
		t := s.T()
		red, blue := uuid.New(), uuid.New()
		groupID := dbtest.CreateTestGroup(t, s.DB, "Kanto", red, "red", 20)
		dbtest.AddTestMember(t, s.DB, groupID, blue, "blue", 20)
		redToken := s.jwt.GenerateToken(t, red, "")

		blueConn := s.dialLive(t, groupID, s.jwt.GenerateToken(t, blue, ""))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(chatURL, groupID),
			request.ChatMessageRequest{Body: "  smell ya later "}, redToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var sent response.ChatMessageResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sent))
		require.Equal(t, "smell ya later", sent.Body)
		require.Equal(t, "red", sent.Username)

		msg := readUntil(t, blueConn, commands.EventChatMessage)
		var pushed commands.ChatPosted
		require.NoError(t, json.Unmarshal(msg.Data, &pushed))
		require.Equal(t, sent.ID, pushed.ID.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(chatItemURL, groupID, sent.ID), nil,
			s.jwt.GenerateToken(t, blue, ""))
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "your own messages")

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(chatItemURL, groupID, sent.ID), nil, redToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
		gone := readUntil(t, blueConn, commands.EventChatDeleted)
		require.Contains(t, string(gone.Data), sent.ID)
	})

	s.Run("Normal case: a socket frame is stored and shows up in the history", func() {
		t := s.T()
		red := uuid.New()
		groupID := dbtest.CreateTestGroup(t, s.DB, "Kanto", red, "red", 20)
		token := s.jwt.GenerateToken(t, red, "")

		conn := s.dialLive(t, groupID, token)
		require.NoError(t, conn.WriteMessage(websocket.TextMessage,
			[]byte(`{"type":"chat_send","data":{"body":"over the socket"}}`)))
		echo := readUntil(t, conn, commands.EventChatMessage)
		require.Contains(t, string(echo.Data), "over the socket")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(chatURL, groupID), nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var history []response.ChatMessageResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
		require.Len(t, history, 1)
		require.Equal(t, "over the socket", history[0].Body)
	})

	s.Run("Normal case: history keeps the latest 100, oldest first", func() {
		t := s.T()
		red := uuid.New()
		groupID := dbtest.CreateTestGroup(t, s.DB, "Kanto", red, "red", 20)
		token := s.jwt.GenerateToken(t, red, "")

		for i := range 102 {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(chatURL, groupID),
				request.ChatMessageRequest{Body: fmt.Sprintf("line %d", i)}, token)
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(chatURL, groupID), nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var history []response.ChatMessageResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
		require.Len(t, history, 100)
		require.Equal(t, "line 2", history[0].Body)
		require.Equal(t, "line 101", history[99].Body)
	})
}

func (s *CommunitySuite) postChallenge(t *testing.T, groupID uuid.UUID, token string, req request.ChallengeRequest) response.ChallengeResponse {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(challengesURL, groupID), req, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var c response.ChallengeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &c))
	return c
}

func (s *CommunitySuite) dialLive(t *testing.T, groupID uuid.UUID, token string) *websocket.Conn {
	t.Helper()
	srv := nethttptest.NewServer(s.Router)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + fmt.Sprintf(liveURL, groupID) + "?access_token=" + token
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)
	t.Cleanup(func() { _ = conn.Close() })

	readUntil(t, conn, live.EventConnected)
	// the first tick is written after the session joins the hub
	readUntil(t, conn, live.EventCooldown)
	return conn
}

func readUntil(t *testing.T, conn *websocket.Conn, event string) live.Message {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for {
		require.NoError(t, conn.SetReadDeadline(deadline))
		_, data, err := conn.ReadMessage()
		require.NoError(t, err, "waiting for %s", event)
		var msg live.Message
		require.NoError(t, json.Unmarshal(data, &msg))
		if msg.Type == event {
			return msg
		}
	}
}
