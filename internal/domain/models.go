package domain

import "time"

type User struct {
	ID             int        `db:"id"`
	Login          string     `db:"login"`
	PasswordHash   string     `db:"password_hash"`
	StudentCard    string     `db:"student_card"`
	DisplayName    string     `db:"display_name"`
	AvatarURL      string     `db:"avatar_url"`
	Bio            string     `db:"bio"`
	Major          string     `db:"major"`
	Institution    string     `db:"institution"`
	Semester       string     `db:"semester"`
	XP             int        `db:"xp"`
	Level          int        `db:"level"`
	Coins          int        `db:"coins"`
	StreakDays     int        `db:"streak_days"`
	LastActivityAt *time.Time `db:"last_activity_at"`
	CreatedAt      time.Time  `db:"created_at"`
}

// Metric identifies which user-activity quantity an achievement criterion
// is evaluated against. The set is closed; anything else is rejected at the
// evaluator boundary.
type Metric string

const (
	MetricPostsCreated        Metric = "posts_created"
	MetricQuestionsAsked      Metric = "questions_asked"
	MetricAnswersGiven        Metric = "answers_given"
	MetricLikesReceived       Metric = "likes_received"
	MetricCoinsEarned         Metric = "coins_earned"
	MetricStreakDays          Metric = "streak_days"
	MetricAnswersAccepted     Metric = "answers_accepted"
	MetricHighRatingsReceived Metric = "high_ratings_received"
	MetricSurfacesUsed        Metric = "surfaces_used"
	MetricSalesCompleted      Metric = "sales_completed"
	MetricProfileCompleteness Metric = "profile_completeness"
)

// Period is the rolling window an achievement criterion counts activity
// over. The empty value means all-time.
type Period string

const (
	PeriodAllTime Period = ""
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

type Achievement struct {
	ID          int       `db:"id"`
	Code        string    `db:"code"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Rarity      string    `db:"rarity"`
	Metric      Metric    `db:"metric"`
	Threshold   int       `db:"threshold"`
	Period      Period    `db:"period"`
	RewardCoins int       `db:"reward_coins"`
	RewardXP    int       `db:"reward_xp"`
	CreatedAt   time.Time `db:"created_at"`
}

type Unlock struct {
	ID            int       `db:"id"`
	UserID        int       `db:"user_id"`
	AchievementID int       `db:"achievement_id"`
	UnlockedAt    time.Time `db:"unlocked_at"`
}

type LedgerEntry struct {
	ID        int       `db:"id"`
	UserID    int       `db:"user_id"`
	Amount    int       `db:"amount"`
	Reason    string    `db:"reason"`
	Reference string    `db:"reference"`
	CreatedAt time.Time `db:"created_at"`
}

type Activity struct {
	ID        int       `db:"id"`
	UserID    int       `db:"user_id"`
	Type      string    `db:"type"`
	Surface   string    `db:"surface"`
	Metadata  string    `db:"metadata"`
	CreatedAt time.Time `db:"created_at"`
}

// LeaderboardRow is a ranked user as returned by the leaderboard queries.
// Score is total XP for the all-time board and the activity count inside
// the window for period boards.
type LeaderboardRow struct {
	UserID      int    `db:"user_id"`
	Login       string `db:"login"`
	DisplayName string `db:"display_name"`
	Level       int    `db:"level"`
	XP          int    `db:"xp"`
	StreakDays  int    `db:"streak_days"`
	Score       int    `db:"score"`
}

type Notification struct {
	ID        int       `db:"id"`
	UserID    int       `db:"user_id"`
	Type      string    `db:"type"`
	Title     string    `db:"title"`
	Message   string    `db:"message"`
	Metadata  string    `db:"metadata"`
	Read      bool      `db:"read"`
	CreatedAt time.Time `db:"created_at"`
}
