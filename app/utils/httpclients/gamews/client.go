package gamews

import (
	"context"
	"fmt"
	"net/http"

	"gametrack.gg/stats-api/app/utils/httpclients"
	"gametrack.gg/stats-api/config/environment_variables"
	"resty.dev/v3"
)

// GameWsRestyClient talks to the live game server's gateway. The game
// protocol binds every call to one logical session and rejects concurrent
// requests on it, so all calls must be funnelled through the admission
// queue; nothing else may use this client directly.
var GameWsRestyClient *resty.Client

func Init() {
	GameWsRestyClient = httpclients.NewClient("GameWsClient")
	GameWsRestyClient.SetBaseURL(environment_variables.EnvironmentVariables.GAME_WS_BASE_URL)
}

type GameWsClient struct {
	BaseURL string
	session string
}

func NewGameWsClient() *GameWsClient {
	return &GameWsClient{
		BaseURL: environment_variables.EnvironmentVariables.GAME_WS_BASE_URL,
		session: environment_variables.EnvironmentVariables.GAME_WS_SESSION,
	}
}

// CastleDetail is the live castle payload as returned by the game gateway.
type CastleDetail struct {
	CastleID   int64  `json:"castleId"`
	Name       string `json:"name"`
	OwnerID    int64  `json:"ownerId"`
	OwnerName  string `json:"ownerName"`
	KingdomID  int    `json:"kingdomId"`
	X          int    `json:"x"`
	Y          int    `json:"y"`
	Might      int64  `json:"might"`
	WallLevel  int    `json:"wallLevel"`
	KeepLevel  int    `json:"keepLevel"`
	BurnedDown bool   `json:"burnedDown"`
}

// GetCastle fetches a single castle from the live game server.
func (c *GameWsClient) GetCastle(ctx context.Context, server string, castleID int64) (*CastleDetail, error) {
	var detail CastleDetail
	resp, err := GameWsRestyClient.R().
		SetContext(ctx).
		SetHeader("X-Game-Session", c.session).
		SetQueryParam("server", server).
		SetResult(&detail).
		Get(fmt.Sprintf("/castles/%d", castleID))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("game server returned status %d for castle %d", resp.StatusCode(), castleID)
	}
	return &detail, nil
}
