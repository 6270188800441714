package metricservice

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/campushub/progression/internal/domain"
	"go.uber.org/zap"
)

type UserRepo interface {
	GetByID(ctx context.Context, userID int) (*domain.User, error)
}

type ActivityRepo interface {
	CountByTypes(ctx context.Context, userID int, types []string, since *time.Time) (int, error)
	CountDistinctSurfaces(ctx context.Context, userID int, since *time.Time) (int, error)
	RecentTimes(ctx context.Context, userID, limit int) ([]time.Time, error)
}

type LedgerRepo interface {
	SumEarned(ctx context.Context, userID int, since *time.Time) (int, error)
}

type Service struct {
	userRepo     UserRepo
	activityRepo ActivityRepo
	ledgerRepo   LedgerRepo
}

func New(userRepo UserRepo, activityRepo ActivityRepo, ledgerRepo LedgerRepo) *Service {
	return &Service{
		userRepo:     userRepo,
		activityRepo: activityRepo,
		ledgerRepo:   ledgerRepo,
	}
}

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrInvalidMetric = errors.New("unknown metric")
)

// Activity types reported by the platform surfaces.
const (
	ActivityPostCreated        string = "post_created"
	ActivityQuestionAsked      string = "question_asked"
	ActivityAnswerGiven        string = "answer_given"
	ActivityLikeReceived       string = "like_received"
	ActivityAnswerAccepted     string = "answer_accepted"
	ActivityHighRatingReceived string = "high_rating_received"
	ActivitySaleCompleted      string = "sale_completed"
)

// streakSampleSize bounds how many recent activities feed the streak
// calculation.
const streakSampleSize = 100

var profileFields = func(u *domain.User) []string {
	return []string{u.DisplayName, u.AvatarURL, u.Bio, u.Major, u.Institution, u.Semester}
}

// ComputeMetric resolves the current value of metric for the user,
// restricted to the rolling window named by period. It is a pure read.
func (s *Service) ComputeMetric(ctx context.Context, userID int, metric domain.Metric, period domain.Period) (int, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		zap.L().Error("can't get user for metric", zap.Error(err))
		return 0, err
	}
	if user == nil {
		return 0, ErrUserNotFound
	}

	since := periodStart(time.Now(), period)

	switch metric {
	case domain.MetricPostsCreated:
		return s.activityRepo.CountByTypes(ctx, userID, []string{ActivityPostCreated}, since)
	case domain.MetricQuestionsAsked:
		return s.activityRepo.CountByTypes(ctx, userID, []string{ActivityQuestionAsked}, since)
	case domain.MetricAnswersGiven:
		return s.activityRepo.CountByTypes(ctx, userID, []string{ActivityAnswerGiven}, since)
	case domain.MetricLikesReceived:
		return s.activityRepo.CountByTypes(ctx, userID, []string{ActivityLikeReceived}, since)
	case domain.MetricAnswersAccepted:
		return s.activityRepo.CountByTypes(ctx, userID, []string{ActivityAnswerAccepted}, since)
	case domain.MetricHighRatingsReceived:
		return s.activityRepo.CountByTypes(ctx, userID, []string{ActivityHighRatingReceived}, since)
	case domain.MetricSalesCompleted:
		return s.activityRepo.CountByTypes(ctx, userID, []string{ActivitySaleCompleted}, since)
	case domain.MetricCoinsEarned:
		return s.ledgerRepo.SumEarned(ctx, userID, since)
	case domain.MetricSurfacesUsed:
		return s.activityRepo.CountDistinctSurfaces(ctx, userID, since)
	case domain.MetricStreakDays:
		return s.computeStreak(ctx, userID)
	case domain.MetricProfileCompleteness:
		return profileCompleteness(user), nil
	default:
		return 0, ErrInvalidMetric
	}
}

// periodStart resolves a rolling window to its lower bound. The windows are
// fixed spans from now, not calendar-aligned. Nil means all-time.
func periodStart(now time.Time, period domain.Period) *time.Time {
	var since time.Time
	switch period {
	case domain.PeriodDaily:
		since = now.AddDate(0, 0, -1)
	case domain.PeriodWeekly:
		since = now.AddDate(0, 0, -7)
	case domain.PeriodMonthly:
		since = now.AddDate(0, 0, -30)
	default:
		return nil
	}
	return &since
}

// computeStreak counts consecutive calendar days with any tracked activity,
// walking backward from today and stopping at the first gap.
func (s *Service) computeStreak(ctx context.Context, userID int) (int, error) {
	times, err := s.activityRepo.RecentTimes(ctx, userID, streakSampleSize)
	if err != nil {
		return 0, err
	}

	days := make(map[string]struct{}, len(times))
	for _, t := range times {
		days[t.Format(time.DateOnly)] = struct{}{}
	}

	streak := 0
	day := time.Now()
	for {
		if _, ok := days[day.Format(time.DateOnly)]; !ok {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak, nil
}

func profileCompleteness(user *domain.User) int {
	fields := profileFields(user)
	filled := 0
	for _, f := range fields {
		if f != "" {
			filled++
		}
	}
	return int(math.Round(float64(filled) / float64(len(fields)) * 100))
}
