package repository

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tradeflows/promoflow/internal/models"
)

var summaryRows = []string{
	"id", "date", "platform", "total_posts", "total_likes",
	"total_comments", "total_shares", "total_views", "created_at",
}

func newAnalyticsRepoMock(t *testing.T) (AnalyticsRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewAnalyticsRepository(db), mock
}

func TestAccumulateUpsertsWithAllCounters(t *testing.T) {
	repo, mock := newAnalyticsRepoMock(t)

	mock.ExpectExec(`INSERT INTO analytics .* ON CONFLICT \(date, platform\) DO UPDATE`).
		WithArgs("2026-03-14", "twitter", int64(3), int64(25), int64(8), int64(4), int64(900)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Accumulate(context.Background(), &models.DailySummary{
		Date:          "2026-03-14",
		Platform:      "twitter",
		TotalPosts:    3,
		TotalLikes:    25,
		TotalComments: 8,
		TotalShares:   4,
		TotalViews:    900,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListForDateScansSummaries(t *testing.T) {
	repo, mock := newAnalyticsRepoMock(t)
	created := time.Date(2026, 3, 14, 23, 55, 0, 0, time.UTC)

	rows := sqlmock.NewRows(summaryRows).
		AddRow(int64(1), "2026-03-14", "linkedin", int64(2), int64(12), int64(3), int64(1), int64(80), created).
		AddRow(int64(2), "2026-03-14", "twitter", int64(4), int64(40), int64(9), int64(6), int64(1200), created)

	mock.ExpectQuery(`FROM analytics WHERE date = \$1 ORDER BY platform`).
		WithArgs("2026-03-14").
		WillReturnRows(rows)

	summaries, err := repo.ListForDate(context.Background(), "2026-03-14")
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "linkedin", summaries[0].Platform)
	assert.Equal(t, int64(1200), summaries[1].TotalViews)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRangeUsesBounds(t *testing.T) {
	repo, mock := newAnalyticsRepoMock(t)

	mock.ExpectQuery(`FROM analytics WHERE date BETWEEN \$1 AND \$2`).
		WithArgs("2026-03-08", "2026-03-14").
		WillReturnRows(sqlmock.NewRows(summaryRows))

	summaries, err := repo.ListRange(context.Background(), "2026-03-08", "2026-03-14")
	require.NoError(t, err)
	assert.Empty(t, summaries)
	assert.NoError(t, mock.ExpectationsWereMet())
}
