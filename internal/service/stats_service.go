package service

import (
	"context"
	"sort"
	"time"

	"github.com/gamefest/gamefest-api/internal/event"
	"github.com/gamefest/gamefest-api/internal/store"
)

type StatsService struct {
	store *store.ParticipantStore
}

func NewStatsService(store *store.ParticipantStore) *StatsService {
	return &StatsService{store: store}
}

type GameCount struct {
	Game  string `json:"game"`
	Count int    `json:"count"`
}

type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type PublicStats struct {
	TotalParticipants int         `json:"totalParticipants"`
	TotalGames        int         `json:"totalGames"`
	TopGame           string      `json:"topGame"`
	TodayCount        int         `json:"todayCount"`
	Games             []GameCount `json:"games"`
}

type Dashboard struct {
	TotalParticipants int                 `json:"totalParticipants"`
	ActiveCount       int                 `json:"activeCount"`
	BannedCount       int                 `json:"bannedCount"`
	TodayCount        int                 `json:"todayCount"`
	Games             []GameCount         `json:"games"`
	Recent            []event.Participant `json:"recentRegistrations"`
	Daily             []DayCount          `json:"dailyRegistrations"`
}

// PublicStats aggregates over active participants only.
func (s *StatsService) PublicStats(ctx context.Context) (*PublicStats, error) {
	active, err := s.store.ListByStatus(ctx, event.StatusActive)
	if err != nil {
		return nil, err
	}

	ranking := rankGames(active)
	topGame := ""
	if len(ranking) > 0 {
		topGame = ranking[0].Game
	}

	return &PublicStats{
		TotalParticipants: len(active),
		TotalGames:        len(ranking),
		TopGame:           topGame,
		TodayCount:        countOnDay(active, time.Now()),
		Games:             ranking,
	}, nil
}

func (s *StatsService) Dashboard(ctx context.Context) (*Dashboard, error) {
	all, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	var active []event.Participant
	banned := 0
	for _, p := range all {
		switch p.Status {
		case event.StatusActive:
			active = append(active, p)
		case event.StatusBanned:
			banned++
		}
	}

	recent := all
	if len(recent) > 10 {
		recent = recent[:10]
	}

	return &Dashboard{
		TotalParticipants: len(all),
		ActiveCount:       len(active),
		BannedCount:       banned,
		TodayCount:        countOnDay(all, time.Now()),
		Games:             rankGames(active),
		Recent:            recent,
		Daily:             dailyCounts(all, 14),
	}, nil
}

// rankGames counts participants per game, highest count first. Ties keep the
// order games were first seen in, which is stable per store ordering.
func rankGames(participants []event.Participant) []GameCount {
	counts := make(map[string]int)
	var order []string
	for _, p := range participants {
		if _, seen := counts[p.Game]; !seen {
			order = append(order, p.Game)
		}
		counts[p.Game]++
	}

	ranking := make([]GameCount, 0, len(order))
	for _, game := range order {
		ranking = append(ranking, GameCount{Game: game, Count: counts[game]})
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Count > ranking[j].Count
	})
	return ranking
}

func dayKey(t time.Time) string {
	return t.Local().Format("2006-01-02")
}

func countOnDay(participants []event.Participant, day time.Time) int {
	key := dayKey(day)
	count := 0
	for _, p := range participants {
		if dayKey(p.CreatedAt) == key {
			count++
		}
	}
	return count
}

// dailyCounts buckets registrations by local calendar date and keeps the
// most recent `days` distinct dates that have data, oldest first.
func dailyCounts(participants []event.Participant, days int) []DayCount {
	counts := make(map[string]int)
	for _, p := range participants {
		counts[dayKey(p.CreatedAt)]++
	}

	dates := make([]string, 0, len(counts))
	for date := range counts {
		dates = append(dates, date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	if len(dates) > days {
		dates = dates[:days]
	}

	daily := make([]DayCount, 0, len(dates))
	for i := len(dates) - 1; i >= 0; i-- {
		daily = append(daily, DayCount{Date: dates[i], Count: counts[dates[i]]})
	}
	return daily
}
