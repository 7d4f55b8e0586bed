package service

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"sentinel-kyc-be/internal/constant"
	"sentinel-kyc-be/internal/dto"
	"sentinel-kyc-be/internal/repository/specification"
	"sentinel-kyc-be/internal/repository/unitofwork"

	"github.com/redis/go-redis/v9"
)

const (
	kpiCacheKey = "dashboard:kpis"
	kpiCacheTTL = 60 * time.Second
)

var monthNames = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

type IDashboardService interface {
	Kpis(ctx context.Context) (*dto.KpiResponse, error)
	RiskDistribution(ctx context.Context) (*dto.RiskDistributionResponse, error)
	AlertTrend(ctx context.Context) ([]*dto.AlertTrendEntry, error)
	Stats(ctx context.Context) (*dto.StatsResponse, error)
}

type dashboardService struct {
	uowFactory  unitofwork.RepositoryFactory
	redisClient *redis.Client
}

// NewDashboardService accepts a nil redis client, KPI caching is then skipped.
func NewDashboardService(
	uowFactory unitofwork.RepositoryFactory,
	redisClient *redis.Client,
) IDashboardService {
	return &dashboardService{
		uowFactory:  uowFactory,
		redisClient: redisClient,
	}
}

func (s *dashboardService) Kpis(ctx context.Context) (*dto.KpiResponse, error) {
	if s.redisClient != nil {
		if cached, err := s.redisClient.Get(ctx, kpiCacheKey).Result(); err == nil {
			var res dto.KpiResponse
			if err := json.Unmarshal([]byte(cached), &res); err == nil {
				return &res, nil
			}
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	reviewsDue, err := uow.CustomerRepository().Count(ctx, specification.ReviewDueInMonth{
		Year:  now.Year(),
		Month: int(now.Month()),
	})
	if err != nil {
		return nil, err
	}

	totalCustomers, err := uow.CustomerRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	highRiskCount, err := uow.CustomerRepository().Count(ctx,
		specification.Filter("risk_tier", constant.RiskTierHigh))
	if err != nil {
		return nil, err
	}

	var highRiskRate float64
	if totalCustomers > 0 {
		highRiskRate = math.Round(float64(highRiskCount)/float64(totalCustomers)*1000) / 10
	}

	openCritical, err := uow.AlertRepository().Count(ctx,
		specification.Filter("severity", "Critical"),
		specification.InValues{Field: "status", Values: []string{
			constant.AlertStatusOpen, constant.AlertStatusUnderReview,
		}},
	)
	if err != nil {
		return nil, err
	}

	docsExpiring, err := uow.DocumentRepository().Count(ctx, specification.ExpiringBetween{
		From: today,
		To:   today.AddDate(0, 0, 30),
	})
	if err != nil {
		return nil, err
	}

	res := &dto.KpiResponse{
		ReviewsDueThisMonth: reviewsDue,
		HighRiskRate:        highRiskRate,
		HighRiskCount:       highRiskCount,
		TotalCustomers:      totalCustomers,
		OpenCriticalAlerts:  openCritical,
		DocsExpiring30Days:  docsExpiring,
	}

	if s.redisClient != nil {
		if data, err := json.Marshal(res); err == nil {
			s.redisClient.Set(ctx, kpiCacheKey, data, kpiCacheTTL)
		}
	}

	return res, nil
}

func (s *dashboardService) RiskDistribution(ctx context.Context) (*dto.RiskDistributionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	distribution, err := uow.CustomerRepository().CountByRiskTier(ctx)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, count := range distribution {
		total += count
	}

	return &dto.RiskDistributionResponse{
		Distribution: distribution,
		Total:        total,
	}, nil
}

func (s *dashboardService) AlertTrend(ctx context.Context) ([]*dto.AlertTrendEntry, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	now := time.Now()

	// First day of the month five months back, so the window covers six
	// months including the current one.
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -5, 0)

	counts, err := uow.AlertRepository().MonthlySeverityCounts(ctx, start)
	if err != nil {
		return nil, err
	}

	trend := make([]*dto.AlertTrendEntry, 0, 6)
	for i := 0; i < 6; i++ {
		month := start.AddDate(0, i, 0)
		entry := &dto.AlertTrendEntry{
			Month: monthNames[int(month.Month())-1],
			Year:  month.Year(),
		}
		for _, bucket := range counts {
			if bucket.Year != month.Year() || bucket.Month != int(month.Month()) {
				continue
			}
			switch bucket.Severity {
			case "Critical":
				entry.Critical = bucket.Count
			case "High":
				entry.High = bucket.Count
			case "Medium":
				entry.Medium = bucket.Count
			case "Low":
				entry.Low = bucket.Count
			}
		}
		trend = append(trend, entry)
	}

	return trend, nil
}

func (s *dashboardService) Stats(ctx context.Context) (*dto.StatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	customers, err := uow.CustomerRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	alerts, err := uow.AlertRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	documents, err := uow.DocumentRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	cases, err := uow.CaseRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	activityEntries, err := uow.ActivityLogRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	analysts, err := uow.AnalystRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.StatsResponse{
		Customers:       customers,
		Alerts:          alerts,
		Documents:       documents,
		Cases:           cases,
		ActivityEntries: activityEntries,
		Analysts:        analysts,
	}, nil
}
