package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished      = "events_published_total"
	MetricNameEventsDropped        = "events_dropped_total"
	MetricNameSubscribersConnected = "event_subscribers_connected"
)

// Garden metric names
const (
	MetricNamePlantsPlanted       = "garden_plants_planted_total"
	MetricNamePlantsHarvested     = "garden_plants_harvested_total"
	MetricNameCoinsEarned         = "garden_coins_earned_total"
	MetricNameCoinsSpent          = "garden_coins_spent_total"
	MetricNameGemsSpent           = "garden_gems_spent_total"
	MetricNameBoostsApplied       = "garden_boosts_applied_total"
	MetricNamePurchases           = "garden_purchases_total"
	MetricNameLevelUps            = "garden_level_ups_total"
	MetricNameDailyRewardsClaimed = "garden_daily_rewards_claimed_total"
	MetricNamePlayerLevel         = "garden_player_level"
	MetricNamePlantsGrowing       = "garden_plants_growing"
	MetricNamePlantsReady         = "garden_plants_ready"
	MetricNameTickDuration        = "garden_tick_duration_seconds"
	MetricNameLeaderboardEntries  = "garden_leaderboard_entries"
)

// Store metric names
const (
	MetricNameStoreWritesTotal   = "store_writes_total"
	MetricNameStoreWriteDuration = "store_write_duration_seconds"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished      = "Total number of events published"
	HelpTextEventsDropped        = "Total number of events dropped before delivery"
	HelpTextSubscribersConnected = "Current number of event stream subscribers"
)

// Garden metric help text
const (
	HelpTextPlantsPlanted       = "Total number of plants planted"
	HelpTextPlantsHarvested     = "Total number of plants harvested"
	HelpTextCoinsEarned         = "Total coins credited to the player"
	HelpTextCoinsSpent          = "Total coins debited from the player"
	HelpTextGemsSpent           = "Total gems debited from the player"
	HelpTextBoostsApplied       = "Total number of boosts applied"
	HelpTextPurchases           = "Total number of shop purchases"
	HelpTextLevelUps            = "Total number of player levels gained"
	HelpTextDailyRewardsClaimed = "Total number of daily rewards claimed"
	HelpTextPlayerLevel         = "Current player level"
	HelpTextPlantsGrowing       = "Plants currently growing"
	HelpTextPlantsReady         = "Plants currently ready to harvest"
	HelpTextTickDuration        = "Duration of one simulation tick in seconds"
	HelpTextLeaderboardEntries  = "Entries on the leaderboard"
)

// Store metric help text
const (
	HelpTextStoreWritesTotal   = "Total number of store writes by result"
	HelpTextStoreWriteDuration = "Store write latency in seconds"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelItem   = "item"
	LabelBoost  = "boost"
	LabelReason = "reason"
	LabelResult = "result"
	LabelSource = "source"
)

// Label values
const (
	ResultOK      = "ok"
	ResultError   = "error"
	ResultDropped = "dropped"

	DropReasonHubFull    = "hub_full"
	DropReasonSlowClient = "slow_client"
	DropReasonNotRunning = "not_running"

	SourceHarvest = "harvest"
	SourceDaily   = "daily"
	SourceOffline = "offline"
	SourceLevelUp = "level_up"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// TickLatencyBuckets covers in-memory simulation work, from 10µs to 100ms
var TickLatencyBuckets = []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05, .1}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgUnexpectedPayload = "Unexpected event payload type"
)

// UnmatchedRoute labels requests no route pattern matched
const UnmatchedRoute = "unmatched"
