package workflow

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go-hr-admin/internal/shared/contextutil"

	"go.uber.org/zap"
	"gorm.io/datatypes"
)

const (
	noDepartment      = "No Department"
	unassigned        = "Unassigned"
	notAvailable      = "N/A"
	noTrackedChanges  = "No tracked fields changed"
	fieldUpdateFormat = "%s: %s → %s"
	dateLayout        = "2006-01-02"
)

// FieldChange is one tracked field in a "Field Updates" entry, rendered by
// display name rather than raw id.
type FieldChange struct {
	Field string `json:"field"`
	From  string `json:"from"`
	To    string `json:"to"`
}

type Entry struct {
	Type       string
	EmployeeID string
	RequestID  *uint
	Details    string
	Changes    []FieldChange
}

// Recorder appends audit entries. It is the only creator of workflow rows
// and never fails its caller: write errors are logged and dropped.
//
//go:generate mockgen -source=workflow_recorder.go -destination=mock/workflow_recorder_mock.go -package=mock
type Recorder interface {
	Record(ctx context.Context, entry Entry)
}

type recorder struct {
	repo   Repository
	logger *zap.Logger
}

func NewRecorder(repo Repository, logger ...*zap.Logger) Recorder {
	l := zap.L().Named("workflow.recorder")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("workflow.recorder")
	}
	return &recorder{repo: repo, logger: l}
}

func (r *recorder) Record(ctx context.Context, entry Entry) {
	logger := contextutil.GetLogger(ctx, r.logger)

	wfType := entry.Type
	if wfType == "" {
		wfType = TypeGeneral
	}

	wf := &Workflow{
		EmployeeID: entry.EmployeeID,
		RequestID:  entry.RequestID,
		Type:       wfType,
		Details:    entry.Details,
		Status:     StatusPending,
	}

	if len(entry.Changes) > 0 {
		raw, err := json.Marshal(entry.Changes)
		if err != nil {
			logger.Warn("encode workflow changes failed", zap.String("employee_id", entry.EmployeeID), zap.Error(err))
		} else {
			wf.Changes = datatypes.JSON(raw)
		}
	}

	if err := r.repo.Create(ctx, wf); err != nil {
		logger.Error("record workflow failed",
			zap.String("side_effect", "workflow_record"),
			zap.String("employee_id", entry.EmployeeID),
			zap.String("workflow_type", wfType),
			zap.Error(err),
		)
		return
	}

	logger.Debug("workflow recorded",
		zap.Uint("workflow_id", wf.ID),
		zap.String("employee_id", entry.EmployeeID),
		zap.String("workflow_type", wfType),
	)
}

func OnboardingDetails(departmentName, positionName string, hireDate *time.Time) string {
	date := notAvailable
	if hireDate != nil {
		date = hireDate.Format(dateLayout)
	}
	return fmt.Sprintf("Onboarded to %s as %s on %s",
		orDefault(departmentName, noDepartment),
		orDefault(positionName, unassigned),
		date,
	)
}

func TransferDetails(fromDepartment, toDepartment string) string {
	return fmt.Sprintf("From: %s → To: %s",
		orDefault(fromDepartment, notAvailable),
		orDefault(toDepartment, notAvailable),
	)
}

// FieldUpdatesDetails coalesces every change into one line; with no changes
// it returns a fixed fallback so an entry is still written.
func FieldUpdatesDetails(changes []FieldChange) string {
	if len(changes) == 0 {
		return noTrackedChanges
	}

	parts := make([]string, len(changes))
	for i, c := range changes {
		parts[i] = fmt.Sprintf(fieldUpdateFormat,
			c.Field,
			orDefault(c.From, notAvailable),
			orDefault(c.To, notAvailable),
		)
	}
	return strings.Join(parts, "; ")
}

func DeletionDetails(departmentName string) string {
	return "Removed from " + orDefault(departmentName, noDepartment)
}

func orDefault(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
