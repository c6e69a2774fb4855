package staff

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

//go:generate mockgen -source=staff_service.go -destination=mock/staff_service_mock.go -package=mock

// Directory resolves between the names the homepage publishes and the stable
// canonical identifiers everything downstream is keyed by.
type Directory interface {
	// NameMap returns normalized display name -> canonical login id for the
	// staff members belonging to one source site.
	NameMap(ctx context.Context, shopID string) (map[string]string, error)
	GetByLoginID(ctx context.Context, loginID string) (*StaffMember, error)
	List(ctx context.Context, shopID string) ([]StaffResponse, error)
}

type directory struct {
	repo   Repository
	logger *zap.Logger
}

func NewDirectory(repo Repository, logger ...*zap.Logger) Directory {
	l := zap.L().Named("staff.directory")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("staff.directory")
	}
	return &directory{repo: repo, logger: l}
}

// shopMatches tolerates both padded and unpadded shop ids ("006" vs "6"),
// a leftover from rosters imported before ids were normalized.
func shopMatches(dbID, targetID string) bool {
	dbID = strings.TrimSpace(dbID)
	if dbID == "" {
		return false
	}
	if dbID == targetID {
		return true
	}
	return strings.TrimLeft(dbID, "0") == strings.TrimLeft(targetID, "0")
}

func (d *directory) NameMap(ctx context.Context, shopID string) (map[string]string, error) {
	members, err := d.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	nameMap := make(map[string]string)
	for _, m := range members {
		if shopID != "" && !shopMatches(m.HomeShopID, shopID) {
			continue
		}
		key := NormalizeName(m.HPDisplayName)
		if key == "" {
			key = NormalizeName(m.DisplayName)
		}
		if key == "" {
			continue
		}
		nameMap[key] = CanonicalID(m.LoginID)
	}
	return nameMap, nil
}

func (d *directory) GetByLoginID(ctx context.Context, loginID string) (*StaffMember, error) {
	return d.repo.FindByLoginID(ctx, loginID)
}

func (d *directory) List(ctx context.Context, shopID string) ([]StaffResponse, error) {
	members, err := d.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]StaffResponse, 0, len(members))
	for _, m := range members {
		if shopID != "" && shopID != "all" && !shopMatches(m.HomeShopID, shopID) {
			continue
		}
		resp = append(resp, mapToResponse(m))
	}
	return resp, nil
}

func mapToResponse(m StaffMember) StaffResponse {
	return StaffResponse{
		ID:            m.ID.String(),
		LoginID:       m.LoginID,
		DisplayName:   m.DisplayName,
		HPDisplayName: m.HPDisplayName,
		HomeShopID:    m.HomeShopID,
		Role:          m.Role,
	}
}
