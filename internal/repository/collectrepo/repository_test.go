package collectrepo_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gocollect/internal/domain"
	apperror "gocollect/internal/errors"
	"gocollect/internal/pkg/logger"
	"gocollect/internal/pkg/testutil"
	"gocollect/internal/repository/collectrepo"
)

var baseTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newRepo(t *testing.T) (*collectrepo.CollectRepository, *testutil.Clock) {
	t.Helper()
	db := testutil.NewSQLiteDB(t, collectrepo.Model())
	clock := testutil.NewClock(baseTime)
	repo := collectrepo.NewCollectRepository(db, 5*time.Second, logger.NewNop()).WithClock(clock.Now)
	return repo, clock
}

func strPtr(s string) *string { return &s }

func TestSave_InsertAssignsIDAndTimestamps(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	c := domain.NewCollect("u1", "sku-1", strPtr("presentes"), nil)
	c.Metadata = map[string]any{"source": "app"}

	require.NoError(t, repo.Save(ctx, c))

	assert.NotEmpty(t, c.ID)
	assert.Equal(t, baseTime, c.CreateTime)
	assert.Equal(t, baseTime, c.UpdateTime)

	found, err := repo.FindByUserAndSku(ctx, "u1", "sku-1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, c.ID, found.ID)
	assert.Equal(t, domain.StatusActive, found.Status)
	assert.Equal(t, "presentes", *found.CollectGroup)
	assert.Nil(t, found.Note)
	assert.Equal(t, "app", found.Metadata["source"])
	assert.True(t, found.CreateTime.Equal(baseTime))
}

func TestSave_UpdateRefreshesUpdateTimeOnly(t *testing.T) {
	repo, clock := newRepo(t)
	ctx := context.Background()

	c := domain.NewCollect("u1", "sku-1", nil, nil)
	require.NoError(t, repo.Save(ctx, c))
	id := c.ID

	clock.Advance(time.Hour)
	c.Cancel()
	c.SkuID = "sku-outro"
	c.Note = strPtr("lembrar no natal")
	require.NoError(t, repo.Save(ctx, c))

	assert.Equal(t, id, c.ID)
	assert.Equal(t, baseTime, c.CreateTime)
	assert.Equal(t, baseTime.Add(time.Hour), c.UpdateTime)

	found, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "sku-1", found.SkuID, "sku_id não pode ser reescrito")
	assert.Equal(t, domain.StatusCancelled, found.Status)
	assert.Equal(t, "lembrar no natal", *found.Note)
	assert.True(t, found.CreateTime.Equal(baseTime))
	assert.True(t, found.UpdateTime.Equal(baseTime.Add(time.Hour)))
}

func TestSave_UpdateMissingRecord(t *testing.T) {
	repo, _ := newRepo(t)

	c := domain.NewCollect("u1", "sku-1", nil, nil)
	c.ID = "0190a1b2-0000-7000-8000-000000000000"

	err := repo.Save(context.Background(), c)

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrCollectNotFound))
}

func TestSave_DuplicatePairIsConstraintViolation(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, domain.NewCollect("u1", "sku-1", nil, nil)))

	dup := domain.NewCollect("u1", "sku-1", nil, nil)
	err := repo.Save(ctx, dup)

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrConstraintViolation))
	assert.Empty(t, dup.ID, "o ID atribuído deve ser desfeito quando o insert falha")

	var appErr apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 409, appErr.HTTPStatus())
}

func TestSave_ConcurrentInsertsSingleWinner(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := repo.Save(ctx, domain.NewCollect("u1", "sku-1", nil, nil))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, apperror.ErrConstraintViolation):
				conflicts++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, workers-1, conflicts)

	n, err := repo.CountByUser(ctx, "u1", nil)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestSaveBatch_RollsBackOnFailure(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, domain.NewCollect("u1", "sku-a", nil, nil)))

	fresh := domain.NewCollect("u1", "sku-b", nil, nil)
	dup := domain.NewCollect("u1", "sku-a", nil, nil)
	err := repo.SaveBatch(ctx, []*domain.Collect{fresh, dup})

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrConstraintViolation))
	assert.Empty(t, fresh.ID)

	found, err := repo.FindByUserAndSku(ctx, "u1", "sku-b")
	require.NoError(t, err)
	assert.Nil(t, found, "o lote inteiro deve ser desfeito")
}

func TestSaveBatch_InsertsAndUpdates(t *testing.T) {
	repo, clock := newRepo(t)
	ctx := context.Background()

	existing := domain.NewCollect("u1", "sku-a", nil, nil)
	require.NoError(t, repo.Save(ctx, existing))

	clock.Advance(time.Minute)
	existing.Hide()
	fresh := domain.NewCollect("u1", "sku-b", nil, nil)
	require.NoError(t, repo.SaveBatch(ctx, []*domain.Collect{existing, fresh}))

	assert.NotEmpty(t, fresh.ID)
	got, err := repo.FindByID(ctx, existing.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusHidden, got.Status)
	assert.True(t, got.UpdateTime.Equal(baseTime.Add(time.Minute)))
}

func TestRemove(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	c := domain.NewCollect("u1", "sku-1", nil, nil)
	require.NoError(t, repo.Save(ctx, c))
	require.NoError(t, repo.Remove(ctx, c))

	found, err := repo.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	err = repo.Remove(ctx, &domain.Collect{})
	assert.True(t, errors.As(err, new(*apperror.ValidationError)))
}

func TestFindByUser_DefaultOrder(t *testing.T) {
	repo, clock := newRepo(t)
	ctx := context.Background()

	r1 := domain.NewCollect("u1", "sku-1", nil, nil)
	r1.IsTop, r1.SortNumber = true, 5
	r2 := domain.NewCollect("u1", "sku-2", nil, nil)
	r2.SortNumber = 1
	r3 := domain.NewCollect("u1", "sku-3", nil, nil)
	r3.IsTop, r3.SortNumber = true, 2

	for _, c := range []*domain.Collect{r1, r2, r3} {
		require.NoError(t, repo.Save(ctx, c))
		clock.Advance(time.Second)
	}
	require.NoError(t, repo.Save(ctx, domain.NewCollect("u2", "sku-1", nil, nil)))

	got, err := repo.FindByUser(ctx, "u1", nil)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{r3.ID, r1.ID, r2.ID}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestFindByUser_CreateTimeTiebreak(t *testing.T) {
	repo, clock := newRepo(t)
	ctx := context.Background()

	older := domain.NewCollect("u1", "sku-1", nil, nil)
	require.NoError(t, repo.Save(ctx, older))
	clock.Advance(time.Minute)
	newer := domain.NewCollect("u1", "sku-2", nil, nil)
	require.NoError(t, repo.Save(ctx, newer))
	cancelled := domain.NewCollect("u1", "sku-3", nil, nil)
	cancelled.Cancel()
	require.NoError(t, repo.Save(ctx, cancelled))

	got, err := repo.FindByUser(ctx, "u1", domain.StatusPtr(domain.StatusActive))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, newer.ID, got[0].ID)
	assert.Equal(t, older.ID, got[1].ID)
}

func TestFindByUserAndGroup_NilGroupMeansUngrouped(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, domain.NewCollect("u1", "sku-1", strPtr("X"), nil)))
	loose := domain.NewCollect("u1", "sku-2", nil, nil)
	require.NoError(t, repo.Save(ctx, loose))

	got, err := repo.FindByUserAndGroup(ctx, "u1", nil, nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, loose.ID, got[0].ID)

	got, err = repo.FindByUserAndGroup(ctx, "u1", strPtr("X"), nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "sku-1", got[0].SkuID)
}

func TestFindTopAndRecent(t *testing.T) {
	repo, clock := newRepo(t)
	ctx := context.Background()

	pinnedLate := domain.NewCollect("u1", "sku-1", nil, nil)
	pinnedLate.IsTop, pinnedLate.SortNumber = true, 9
	pinnedEarly := domain.NewCollect("u1", "sku-2", nil, nil)
	pinnedEarly.IsTop, pinnedEarly.SortNumber = true, 1
	pinnedCancelled := domain.NewCollect("u1", "sku-3", nil, nil)
	pinnedCancelled.IsTop = true
	pinnedCancelled.Cancel()
	plain := domain.NewCollect("u1", "sku-4", nil, nil)

	for _, c := range []*domain.Collect{pinnedLate, pinnedEarly, pinnedCancelled, plain} {
		require.NoError(t, repo.Save(ctx, c))
		clock.Advance(time.Second)
	}

	top, err := repo.FindTopByUser(ctx, "u1", 10)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, pinnedEarly.ID, top[0].ID)
	assert.Equal(t, pinnedLate.ID, top[1].ID)

	recent, err := repo.FindRecentByUser(ctx, "u1", 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, plain.ID, recent[0].ID)
	assert.Equal(t, pinnedEarly.ID, recent[1].ID)
}

func TestGroupsByUser_ExcludesInactiveAndNullGroups(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	cancelled := domain.NewCollect("u1", "sku-1", strPtr("X"), nil)
	cancelled.Cancel()
	require.NoError(t, repo.Save(ctx, cancelled))
	require.NoError(t, repo.Save(ctx, domain.NewCollect("u1", "sku-2", nil, nil)))
	require.NoError(t, repo.Save(ctx, domain.NewCollect("u1", "sku-3", strPtr("casa"), nil)))
	require.NoError(t, repo.Save(ctx, domain.NewCollect("u1", "sku-4", strPtr("viagem"), nil)))
	require.NoError(t, repo.Save(ctx, domain.NewCollect("u1", "sku-5", strPtr("viagem"), nil)))
	require.NoError(t, repo.Save(ctx, domain.NewCollect("u2", "sku-6", strPtr("Y"), nil)))

	groups, err := repo.GroupsByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []domain.GroupCount{
		{Name: "viagem", Count: 2},
		{Name: "casa", Count: 1},
	}, groups)
}

func TestPopularSkus_Ranking(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	for _, u := range []string{"u1", "u2", "u3"} {
		require.NoError(t, repo.Save(ctx, domain.NewCollect(u, "A", nil, nil)))
	}
	for _, u := range []string{"u1", "u2"} {
		require.NoError(t, repo.Save(ctx, domain.NewCollect(u, "B", nil, nil)))
	}
	hidden := domain.NewCollect("u4", "B", nil, nil)
	hidden.Hide()
	require.NoError(t, repo.Save(ctx, hidden))
	require.NoError(t, repo.Save(ctx, domain.NewCollect("u1", "C", nil, nil)))

	popular, err := repo.PopularSkus(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []domain.SkuCount{
		{SkuID: "A", CollectCount: 3},
		{SkuID: "B", CollectCount: 2},
	}, popular)
}

func TestPurgeCancelledOlderThan_StrictBoundary(t *testing.T) {
	repo, clock := newRepo(t)
	ctx := context.Background()

	c := domain.NewCollect("u1", "sku-1", nil, nil)
	c.Cancel()
	require.NoError(t, repo.Save(ctx, c))
	active := domain.NewCollect("u1", "sku-2", nil, nil)
	require.NoError(t, repo.Save(ctx, active))
	clock.Advance(48 * time.Hour)

	n, err := repo.PurgeCancelledOlderThan(ctx, baseTime)
	require.NoError(t, err)
	assert.Zero(t, n, "registro exatamente no corte não é expurgado")

	n, err = repo.PurgeCancelledOlderThan(ctx, baseTime.Add(time.Second))
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	found, err := repo.FindByID(ctx, active.ID)
	require.NoError(t, err)
	assert.NotNil(t, found, "registros ativos nunca são expurgados")
}

func TestCountsAndDistincts(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	cancelled := domain.NewCollect("u1", "A", nil, nil)
	cancelled.Cancel()
	require.NoError(t, repo.Save(ctx, cancelled))
	require.NoError(t, repo.Save(ctx, domain.NewCollect("u1", "B", nil, nil)))
	require.NoError(t, repo.Save(ctx, domain.NewCollect("u2", "A", nil, nil)))

	active := domain.StatusPtr(domain.StatusActive)

	n, err := repo.CountByUser(ctx, "u1", nil)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	n, err = repo.CountByUser(ctx, "u1", active)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	n, err = repo.CountBySku(ctx, "A", active)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	n, err = repo.CountAll(ctx, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	n, err = repo.CountDistinctUsers(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	n, err = repo.CountDistinctSkus(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	bySku, err := repo.FindBySku(ctx, "A", nil)
	require.NoError(t, err)
	assert.Len(t, bySku, 2)
}

func TestSearch_FiltersAndPagination(t *testing.T) {
	repo, clock := newRepo(t)
	ctx := context.Background()

	for i, sku := range []string{"A", "B", "C", "D", "E"} {
		c := domain.NewCollect("u1", sku, nil, nil)
		if i%2 == 0 {
			c.Cancel()
		}
		require.NoError(t, repo.Save(ctx, c))
		clock.Advance(time.Minute)
	}
	require.NoError(t, repo.Save(ctx, domain.NewCollect("u2", "A", nil, nil)))

	page, total, err := repo.Search(ctx, domain.CollectFilter{UserID: "u1", Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	require.Len(t, page, 2)
	assert.Equal(t, "E", page[0].SkuID)
	assert.Equal(t, "D", page[1].SkuID)

	page, total, err = repo.Search(ctx, domain.CollectFilter{UserID: "u1", Page: 3, Limit: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	require.Len(t, page, 1)
	assert.Equal(t, "A", page[0].SkuID)

	cancelled := domain.StatusPtr(domain.StatusCancelled)
	after := baseTime.Add(time.Minute)
	page, total, err = repo.Search(ctx, domain.CollectFilter{Status: cancelled, CreatedAfter: &after})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, page, 2)
}

func TestFindByIDs_SkipsMissing(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	c := domain.NewCollect("u1", "A", nil, nil)
	require.NoError(t, repo.Save(ctx, c))

	got, err := repo.FindByIDs(ctx, []string{c.ID, "nao-existe"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, c.ID, got[0].ID)

	got, err = repo.FindByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
