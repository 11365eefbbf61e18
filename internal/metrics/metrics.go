package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsDropped,
			Help: HelpTextEventsDropped,
		},
		[]string{LabelType, LabelReason},
	)

	SubscribersConnected = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameSubscribersConnected,
			Help: HelpTextSubscribersConnected,
		},
	)
)

// Garden Metrics
var (
	PlantsPlanted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePlantsPlanted,
			Help: HelpTextPlantsPlanted,
		},
		[]string{LabelType},
	)

	PlantsHarvested = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePlantsHarvested,
			Help: HelpTextPlantsHarvested,
		},
		[]string{LabelType},
	)

	CoinsEarned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCoinsEarned,
			Help: HelpTextCoinsEarned,
		},
		[]string{LabelSource},
	)

	CoinsSpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCoinsSpent,
			Help: HelpTextCoinsSpent,
		},
	)

	GemsSpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGemsSpent,
			Help: HelpTextGemsSpent,
		},
	)

	BoostsApplied = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBoostsApplied,
			Help: HelpTextBoostsApplied,
		},
		[]string{LabelBoost},
	)

	Purchases = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePurchases,
			Help: HelpTextPurchases,
		},
		[]string{LabelItem},
	)

	LevelUps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLevelUps,
			Help: HelpTextLevelUps,
		},
	)

	DailyRewardsClaimed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDailyRewardsClaimed,
			Help: HelpTextDailyRewardsClaimed,
		},
	)

	PlayerLevel = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNamePlayerLevel,
			Help: HelpTextPlayerLevel,
		},
	)

	PlantsGrowing = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNamePlantsGrowing,
			Help: HelpTextPlantsGrowing,
		},
	)

	PlantsReady = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNamePlantsReady,
			Help: HelpTextPlantsReady,
		},
	)

	TickDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameTickDuration,
			Help:    HelpTextTickDuration,
			Buckets: TickLatencyBuckets,
		},
	)

	LeaderboardEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameLeaderboardEntries,
			Help: HelpTextLeaderboardEntries,
		},
	)
)

// Store Metrics
var (
	StoreWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStoreWritesTotal,
			Help: HelpTextStoreWritesTotal,
		},
		[]string{LabelResult},
	)

	StoreWriteDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameStoreWriteDuration,
			Help:    HelpTextStoreWriteDuration,
			Buckets: HTTPLatencyBuckets,
		},
	)
)
