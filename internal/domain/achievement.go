package domain

// AchievementMetric is the counter an achievement threshold is tested against.
type AchievementMetric string

const (
	MetricXP      AchievementMetric = "xp"
	MetricStreak  AchievementMetric = "streak"
	MetricReviews AchievementMetric = "reviews"
	MetricWords   AchievementMetric = "words"
)

// Achievement is one entry of the fixed unlock table.
type Achievement struct {
	ID        string
	Metric    AchievementMetric
	Threshold int
	Message   string
}

// AchievementTable lists every achievement in reporting order.
var AchievementTable = []Achievement{
	{ID: "XP_100", Metric: MetricXP, Threshold: 100, Message: "Earned 100 XP"},
	{ID: "XP_500", Metric: MetricXP, Threshold: 500, Message: "Earned 500 XP"},
	{ID: "XP_1000", Metric: MetricXP, Threshold: 1000, Message: "Earned 1000 XP"},
	{ID: "Streak_3", Metric: MetricStreak, Threshold: 3, Message: "3-day study streak"},
	{ID: "Streak_7", Metric: MetricStreak, Threshold: 7, Message: "7-day study streak"},
	{ID: "Streak_30", Metric: MetricStreak, Threshold: 30, Message: "30-day study streak"},
	{ID: "Reviews_100", Metric: MetricReviews, Threshold: 100, Message: "100 reviews completed"},
	{ID: "Reviews_500", Metric: MetricReviews, Threshold: 500, Message: "500 reviews completed"},
	{ID: "Words_50", Metric: MetricWords, Threshold: 50, Message: "Added 50 words"},
}

// LookupAchievement finds a table entry by id.
func LookupAchievement(id string) (Achievement, bool) {
	for _, a := range AchievementTable {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}
