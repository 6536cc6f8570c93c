package cache

// Key builders shared by everything that caches service responses.
// Day-scoped keys embed the schedule date so a date flip never serves
// yesterday's slate.

// GamesKey caches the scoreboard for a date.
func GamesKey(date string) string { return "games:" + date }

// OddsKey caches the odds book for a date.
func OddsKey(date string) string { return "odds:" + date }

// HeatKey caches one matchup's discussion heat.
func HeatKey(away, home string) string { return "heat:" + away + ":" + home }

// PostsKey caches one matchup's sampled posts.
func PostsKey(away, home string) string { return "posts:" + away + ":" + home }

// StandingsKey caches the conference standings.
func StandingsKey() string { return "standings" }

// PropsKey caches the player prop markets for a date.
func PropsKey(date string) string { return "props:" + date }

// HistoryKey caches one market's price history.
func HistoryKey(clobID string) string { return "history:" + clobID }

// DayPattern matches every day-scoped key for a date, for Clear.
func DayPattern(date string) string { return "*:" + date }
