package olap

import (
	"context"
	"fmt"
	"net/http"

	"gametrack.gg/stats-api/app/utils/httpclients"
	"gametrack.gg/stats-api/config/environment_variables"
	"resty.dev/v3"
)

// OlapRestyClient speaks to the column store over its HTTP interface.
var OlapRestyClient *resty.Client

func Init() {
	OlapRestyClient = httpclients.NewClient("OlapClient")
	OlapRestyClient.SetBaseURL(environment_variables.EnvironmentVariables.OLAP_BASE_URL)
}

type OlapClient struct {
	BaseURL string
}

func NewOlapClient() *OlapClient {
	return &OlapClient{
		BaseURL: environment_variables.EnvironmentVariables.OLAP_BASE_URL,
	}
}

type queryResponse[T any] struct {
	Data []T   `json:"data"`
	Rows int64 `json:"rows"`
}

// DailyPoint is one day of an aggregate series.
type DailyPoint struct {
	Day       string `json:"day"`
	Might     int64  `json:"might"`
	Loot      int64  `json:"loot"`
	Honor     int64  `json:"honor"`
	Level     int    `json:"level"`
	RankMight int    `json:"rank_might"`
}

// ServerDailyPoint is one day of server-wide aggregates.
type ServerDailyPoint struct {
	Day          string `json:"day"`
	Players      int64  `json:"players"`
	ActiveToday  int64  `json:"active_today"`
	TotalMight   int64  `json:"total_might"`
	MedianMight  int64  `json:"median_might"`
	NewAlliances int64  `json:"new_alliances"`
}

func runQuery[T any](ctx context.Context, query string) ([]T, error) {
	var result queryResponse[T]
	resp, err := OlapRestyClient.R().
		SetContext(ctx).
		SetBasicAuth(
			environment_variables.EnvironmentVariables.OLAP_USER,
			environment_variables.EnvironmentVariables.OLAP_PASSWORD,
		).
		SetQueryParam("default_format", "JSON").
		SetBody(query).
		SetResult(&result).
		Post("/")
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("olap store returned status %d", resp.StatusCode())
	}
	return result.Data, nil
}

// PlayerDailySeries returns the stored daily aggregates for one player.
func (c *OlapClient) PlayerDailySeries(ctx context.Context, server string, playerID int64, days int) ([]DailyPoint, error) {
	query := fmt.Sprintf(
		"SELECT day, might, loot, honor, level, rank_might FROM player_daily"+
			" WHERE server = '%s' AND player_id = %d AND day >= today() - %d ORDER BY day",
		sanitize(server), playerID, days,
	)
	return runQuery[DailyPoint](ctx, query)
}

// ServerDailySeries returns the stored server-wide daily aggregates.
func (c *OlapClient) ServerDailySeries(ctx context.Context, server string, days int) ([]ServerDailyPoint, error) {
	query := fmt.Sprintf(
		"SELECT day, players, active_today, total_might, median_might, new_alliances"+
			" FROM server_daily WHERE server = '%s' AND day >= today() - %d ORDER BY day",
		sanitize(server), days,
	)
	return runQuery[ServerDailyPoint](ctx, query)
}

// sanitize strips quoting characters from identifiers interpolated into
// query text. Server codes are validated against the registry upstream,
// this is a second line only.
func sanitize(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '\'' || r == '\\' || r == ';' {
			continue
		}
		out = append(out, r)
	}
	return string(out)
}
