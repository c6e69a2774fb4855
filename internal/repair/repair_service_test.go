package repair

import (
	"context"
	"testing"
	"time"

	"github.com/yoshiboykidd/karinto-castmanager-sub000/internal/shift"
	"github.com/yoshiboykidd/karinto-castmanager-sub000/internal/staff"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeStaffRepo struct {
	staff.Repository
	findAllFn       func(ctx context.Context) ([]staff.StaffMember, error)
	updateLoginIDFn func(ctx context.Context, id, newLoginID string) error
}

func (f *fakeStaffRepo) FindAll(ctx context.Context) ([]staff.StaffMember, error) {
	return f.findAllFn(ctx)
}

func (f *fakeStaffRepo) UpdateLoginID(ctx context.Context, id, newLoginID string) error {
	return f.updateLoginIDFn(ctx, id, newLoginID)
}

type fakeShiftRepo struct {
	shift.Repository
	deleteFromDateFn func(ctx context.Context, from time.Time) (int64, error)
}

func (f *fakeShiftRepo) DeleteFromDate(ctx context.Context, from time.Time) (int64, error) {
	return f.deleteFromDateFn(ctx, from)
}

func TestRunNormalizesShortIDs(t *testing.T) {
	shortie := staff.StaffMember{ID: uuid.New(), LoginID: "600037", DisplayName: "みか"}
	canonical := staff.StaffMember{ID: uuid.New(), LoginID: "00600042", DisplayName: "りん"}

	updates := map[string]string{}
	staffRepo := &fakeStaffRepo{
		findAllFn: func(ctx context.Context) ([]staff.StaffMember, error) {
			return []staff.StaffMember{shortie, canonical}, nil
		},
		updateLoginIDFn: func(ctx context.Context, id, newLoginID string) error {
			updates[id] = newLoginID
			return nil
		},
	}
	shifts := &fakeShiftRepo{
		deleteFromDateFn: func(ctx context.Context, from time.Time) (int64, error) {
			return 7, nil
		},
	}

	svc := NewService(staffRepo, shifts)
	res, err := svc.Run(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, res.Fixed)
	assert.Equal(t, 0, res.Collisions)
	assert.Equal(t, 0, res.Failed)
	assert.Equal(t, int64(7), res.RemovedFuture)
	assert.Equal(t, "00600037", updates[shortie.ID.String()])
	assert.NotContains(t, updates, canonical.ID.String())
}

func TestRunReportsCollision(t *testing.T) {
	owner := staff.StaffMember{ID: uuid.New(), LoginID: "00600037", DisplayName: "みか"}
	duplicate := staff.StaffMember{ID: uuid.New(), LoginID: "600037", DisplayName: "みか2"}

	staffRepo := &fakeStaffRepo{
		findAllFn: func(ctx context.Context) ([]staff.StaffMember, error) {
			return []staff.StaffMember{owner, duplicate}, nil
		},
		updateLoginIDFn: func(ctx context.Context, id, newLoginID string) error {
			t.Fatal("colliding id must not be rewritten")
			return nil
		},
	}
	shifts := &fakeShiftRepo{
		deleteFromDateFn: func(ctx context.Context, from time.Time) (int64, error) {
			return 0, nil
		},
	}

	svc := NewService(staffRepo, shifts)
	res, err := svc.Run(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 0, res.Fixed)
	assert.Equal(t, 1, res.Collisions)
	assert.Contains(t, res.Logs[0], "00600037")
}

func TestRunCollisionBetweenTwoShortIDs(t *testing.T) {
	first := staff.StaffMember{ID: uuid.New(), LoginID: "600037", DisplayName: "みか"}
	second := staff.StaffMember{ID: uuid.New(), LoginID: "0600037", DisplayName: "みか2"}

	updates := map[string]string{}
	staffRepo := &fakeStaffRepo{
		findAllFn: func(ctx context.Context) ([]staff.StaffMember, error) {
			return []staff.StaffMember{first, second}, nil
		},
		updateLoginIDFn: func(ctx context.Context, id, newLoginID string) error {
			updates[id] = newLoginID
			return nil
		},
	}
	shifts := &fakeShiftRepo{
		deleteFromDateFn: func(ctx context.Context, from time.Time) (int64, error) {
			return 0, nil
		},
	}

	svc := NewService(staffRepo, shifts)
	res, err := svc.Run(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, res.Fixed)
	assert.Equal(t, 1, res.Collisions)
	assert.Equal(t, "00600037", updates[first.ID.String()])
	assert.NotContains(t, updates, second.ID.String())
}

func TestRunSkipsNonNumericAndKeepsGoing(t *testing.T) {
	bad := staff.StaffMember{ID: uuid.New(), LoginID: "mika", DisplayName: "みか"}
	good := staff.StaffMember{ID: uuid.New(), LoginID: "42", DisplayName: "りん"}

	updates := 0
	staffRepo := &fakeStaffRepo{
		findAllFn: func(ctx context.Context) ([]staff.StaffMember, error) {
			return []staff.StaffMember{bad, good}, nil
		},
		updateLoginIDFn: func(ctx context.Context, id, newLoginID string) error {
			updates++
			assert.Equal(t, "00000042", newLoginID)
			return nil
		},
	}
	shifts := &fakeShiftRepo{
		deleteFromDateFn: func(ctx context.Context, from time.Time) (int64, error) {
			return 0, nil
		},
	}

	svc := NewService(staffRepo, shifts)
	res, err := svc.Run(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, res.Failed)
	assert.Equal(t, 1, res.Fixed)
	assert.Equal(t, 1, updates)
}

func TestRunDeletesFromTodayForward(t *testing.T) {
	jst := time.FixedZone("JST", 9*60*60)
	now := time.Now().In(jst)
	wantDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	staffRepo := &fakeStaffRepo{
		findAllFn: func(ctx context.Context) ([]staff.StaffMember, error) {
			return nil, nil
		},
	}
	shifts := &fakeShiftRepo{
		deleteFromDateFn: func(ctx context.Context, from time.Time) (int64, error) {
			assert.True(t, from.Equal(wantDay))
			return 3, nil
		},
	}

	svc := NewService(staffRepo, shifts)
	res, err := svc.Run(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(3), res.RemovedFuture)
}
