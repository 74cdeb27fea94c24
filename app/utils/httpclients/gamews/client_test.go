package gamews_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"gametrack.gg/stats-api/app/utils/httpclients"
	"gametrack.gg/stats-api/app/utils/httpclients/gamews"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pointClient(t *testing.T, handler http.HandlerFunc) *gamews.GameWsClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	gamews.GameWsRestyClient = httpclients.NewClient("GameWsClient")
	gamews.GameWsRestyClient.SetBaseURL(srv.URL)
	return gamews.NewGameWsClient()
}

func TestGetCastle(t *testing.T) {
	var gotPath, gotServer string
	client := pointClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotServer = r.URL.Query().Get("server")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"castleId":77,"name":"Blackstone","ownerId":42,"ownerName":"alice","kingdomId":0,"x":311,"y":208,"might":15000,"wallLevel":12,"keepLevel":14,"burnedDown":false}`))
	})

	detail, err := client.GetCastle(context.Background(), "DE1", 77)
	require.NoError(t, err)
	assert.Equal(t, "/castles/77", gotPath)
	assert.Equal(t, "DE1", gotServer)
	assert.Equal(t, int64(77), detail.CastleID)
	assert.Equal(t, "alice", detail.OwnerName)
	assert.Equal(t, int64(15000), detail.Might)
	assert.False(t, detail.BurnedDown)
}

func TestGetCastleNonOKStatus(t *testing.T) {
	client := pointClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.GetCastle(context.Background(), "DE1", 77)
	assert.Error(t, err)
}
