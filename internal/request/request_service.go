package request

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/yoshiboykidd/karinto-castmanager-sub000/internal/notify"
	"github.com/yoshiboykidd/karinto-castmanager-sub000/internal/shift"
	"github.com/yoshiboykidd/karinto-castmanager-sub000/internal/staff"

	requesterrors "github.com/yoshiboykidd/karinto-castmanager-sub000/internal/request/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=request_service.go -destination=mock/request_service_mock.go -package=mock
type Service interface {
	Validate(ctx context.Context, req ValidateShiftRequest) (Evaluation, error)
	Submit(ctx context.Context, req SubmitShiftRequest) (SubmitResponse, error)
	ListShifts(ctx context.Context, loginID, from, to string) ([]ShiftResponse, error)
}

type service struct {
	shifts    shift.Repository
	directory staff.Directory
	notifier  notify.Notifier
	loc       *time.Location
	logger    *zap.Logger
}

func NewService(shifts shift.Repository, directory staff.Directory, notifier notify.Notifier, logger ...*zap.Logger) Service {
	l := zap.L().Named("request.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("request.service")
	}
	return &service{
		shifts:    shifts,
		directory: directory,
		notifier:  notifier,
		loc:       time.FixedZone("JST", 9*60*60),
		logger:    l,
	}
}

var clockPattern = regexp.MustCompile(`^\d{1,2}:\d{2}$`)

func (s *service) today() time.Time {
	now := time.Now().In(s.loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *service) Validate(ctx context.Context, req ValidateShiftRequest) (Evaluation, error) {
	loginID, dates, err := parseIdentity(req.LoginID, req.Dates)
	if err != nil {
		return Evaluation{}, err
	}
	if err := checkProposals(req.Proposals); err != nil {
		return Evaluation{}, err
	}

	existing, err := s.loadExisting(ctx, loginID, dates)
	if err != nil {
		return Evaluation{}, err
	}

	return Evaluate(s.today(), dates, req.Proposals, existing), nil
}

func (s *service) Submit(ctx context.Context, req SubmitShiftRequest) (SubmitResponse, error) {
	loginID, dates, err := parseIdentity(req.LoginID, req.Dates)
	if err != nil {
		return SubmitResponse{}, err
	}
	if err := checkProposals(req.Proposals); err != nil {
		return SubmitResponse{}, err
	}

	existing, err := s.loadExisting(ctx, loginID, dates)
	if err != nil {
		return SubmitResponse{}, err
	}

	eval := Evaluate(s.today(), dates, req.Proposals, existing)
	if !eval.CanSubmit {
		s.logger.Warn("submit blocked by validation",
			zap.String("login_id", loginID),
			zap.Int("dates", len(dates)),
		)
		return SubmitResponse{Total: len(dates), Checks: eval.Checks}, requesterrors.ErrValidationRejected
	}

	displayName := loginID
	if member, err := s.directory.GetByLoginID(ctx, loginID); err == nil {
		displayName = member.DisplayName
	}

	// each date is an independent write: one failing upsert never rolls
	// back the others, the caller just learns how many landed
	resp := SubmitResponse{Total: len(dates)}
	for _, check := range eval.Checks {
		prior := existing[check.Date]
		date, _ := time.Parse(dateFormat, check.Date)

		row := &shift.Shift{
			ID:                 uuid.New(),
			LoginID:            loginID,
			ShiftDate:          date,
			Status:             shift.StatusRequested,
			StartTime:          check.Start,
			EndTime:            check.End,
			HPDisplayName:      displayName,
			IsOfficialPreExist: prior.IsOfficialPreExist || prior.Status == shift.StatusOfficial,
		}
		if err := s.shifts.UpsertRequested(ctx, row); err != nil {
			s.logger.Error("request upsert failed",
				zap.String("login_id", loginID),
				zap.String("date", check.Date),
				zap.Error(err),
			)
			resp.Failed++
			continue
		}
		resp.Submitted++
	}

	if resp.Submitted > 0 {
		s.notifySubmission(displayName, resp.Submitted)
	}

	s.logger.Info("shift request submitted",
		zap.String("login_id", loginID),
		zap.Int("submitted", resp.Submitted),
		zap.Int("failed", resp.Failed),
	)
	return resp, nil
}

// notifySubmission is fire-and-forget: the requests are already persisted,
// so a dead webhook is logged and otherwise ignored.
func (s *service) notifySubmission(displayName string, count int) {
	text := fmt.Sprintf("🔔 シフト申請: **%s** (%d件)", displayName, count)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.notifier.Send(ctx, text); err != nil {
			s.logger.Warn("submission notification failed", zap.Error(err))
		}
	}()
}

func (s *service) ListShifts(ctx context.Context, loginID, from, to string) ([]ShiftResponse, error) {
	if !staff.IsNumeric(loginID) {
		return nil, requesterrors.ErrInvalidLoginID
	}
	fromDate, err := time.Parse(dateFormat, from)
	if err != nil {
		return nil, requesterrors.ErrInvalidDateFormat
	}
	toDate, err := time.Parse(dateFormat, to)
	if err != nil {
		return nil, requesterrors.ErrInvalidDateFormat
	}

	rows, err := s.shifts.ListByStaffAndDateRange(ctx, staff.CanonicalID(loginID), fromDate, toDate)
	if err != nil {
		return nil, err
	}

	resp := make([]ShiftResponse, len(rows))
	for i, row := range rows {
		resp[i] = mapToShiftResponse(row)
	}
	return resp, nil
}

func parseIdentity(rawLoginID string, rawDates []string) (string, []time.Time, error) {
	if !staff.IsNumeric(rawLoginID) {
		return "", nil, requesterrors.ErrInvalidLoginID
	}
	loginID := staff.CanonicalID(rawLoginID)

	if len(rawDates) == 0 {
		return "", nil, requesterrors.ErrNoDatesSelected
	}

	seen := make(map[string]bool, len(rawDates))
	dates := make([]time.Time, 0, len(rawDates))
	for _, raw := range rawDates {
		d, err := time.Parse(dateFormat, raw)
		if err != nil {
			return "", nil, requesterrors.ErrInvalidDateFormat
		}
		if seen[raw] {
			continue
		}
		seen[raw] = true
		dates = append(dates, d)
	}
	return loginID, dates, nil
}

func checkProposals(proposals map[string]Proposal) error {
	for _, p := range proposals {
		for _, v := range []string{p.Start, p.End} {
			if v == "" || shift.IsOff(v) || isValidClock(v) {
				continue
			}
			return requesterrors.ErrInvalidTimeFormat
		}
	}
	return nil
}

// isValidClock accepts HH:MM wall-clock values, so "25:00" and "19:99"
// are rejected even though they match the shape.
func isValidClock(v string) bool {
	if !clockPattern.MatchString(v) {
		return false
	}
	parts := strings.SplitN(v, ":", 2)
	hour, _ := strconv.Atoi(parts[0])
	minute, _ := strconv.Atoi(parts[1])
	return hour < 24 && minute < 60
}

func (s *service) loadExisting(ctx context.Context, loginID string, dates []time.Time) (map[string]shift.Shift, error) {
	min, max := dates[0], dates[0]
	for _, d := range dates[1:] {
		if d.Before(min) {
			min = d
		}
		if d.After(max) {
			max = d
		}
	}

	rows, err := s.shifts.ListByStaffAndDateRange(ctx, loginID, min, max)
	if err != nil {
		return nil, err
	}

	existing := make(map[string]shift.Shift, len(rows))
	for _, row := range rows {
		existing[row.ShiftDate.Format(dateFormat)] = row
	}
	return existing, nil
}

func mapToShiftResponse(row shift.Shift) ShiftResponse {
	resp := ShiftResponse{
		ID:                 row.ID.String(),
		LoginID:            row.LoginID,
		Date:               row.ShiftDate.Format(dateFormat),
		Status:             row.Status,
		StartTime:          row.StartTime,
		EndTime:            row.EndTime,
		IsOfficialPreExist: row.IsOfficialPreExist,
		StoreCode:          row.StoreCode,
	}
	resp.HPStartTime = row.HPStartTime
	resp.HPEndTime = row.HPEndTime
	return resp
}
