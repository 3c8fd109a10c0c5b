package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go-hr-admin/internal/account"
	accounterrors "go-hr-admin/internal/account/errors"
	"go-hr-admin/internal/department"
	departmenterrors "go-hr-admin/internal/department/errors"
	employeeerrors "go-hr-admin/internal/employee/errors"
	"go-hr-admin/internal/events"
	"go-hr-admin/internal/messaging/kafka"
	"go-hr-admin/internal/position"
	"go-hr-admin/internal/shared/apperror"
	"go-hr-admin/internal/shared/contextutil"
	"go-hr-admin/internal/workflow"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	EmployeeOptionsKey = "employees:options"
	optionsCacheTTL    = time.Hour

	aggregateType = "employee"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context) ([]EmployeeOptionResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	NextID(ctx context.Context) (NextIDResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

// Collaborators are the stores and side-effect components the lifecycle
// reads from or notifies. Outbox and Redis may be nil.
type Collaborators struct {
	Accounts    account.Repository
	Departments department.Repository
	Counter     department.Counter
	Guard       position.Guard
	Recorder    workflow.Recorder
	Outbox      kafka.OutboxRepository
	Redis       *redis.Client
}

type service struct {
	db          *sql.DB
	repo        Repository
	accounts    account.Repository
	departments department.Repository
	counter     department.Counter
	guard       position.Guard
	recorder    workflow.Recorder
	outbox      kafka.OutboxRepository
	rdb         *redis.Client
	sf          *singleflight.Group
	logger      *zap.Logger
}

func NewService(db *sql.DB, repo Repository, deps Collaborators, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:          db,
		repo:        repo,
		accounts:    deps.Accounts,
		departments: deps.Departments,
		counter:     deps.Counter,
		guard:       deps.Guard,
		recorder:    deps.Recorder,
		outbox:      deps.Outbox,
		rdb:         deps.Redis,
		sf:          &singleflight.Group{},
		logger:      l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
		zap.String("email", req.Email),
	)

	hireDate, err := parseHireDate(req.HireDate)
	if err != nil {
		return EmployeeResponse{}, err
	}
	status, err := normalizeStatus(req.Status)
	if err != nil {
		return EmployeeResponse{}, err
	}

	acc, err := s.resolveAccount(ctx, req.AccountID, req.Email)
	if err != nil {
		return EmployeeResponse{}, err
	}
	if err := s.ensureAccountFree(ctx, acc.ID, ""); err != nil {
		return EmployeeResponse{}, err
	}

	positionName := trimmedPtr(req.Position)
	if positionName != nil {
		if err := s.guard.CheckAvailable(ctx, *positionName); err != nil {
			s.logger.Warn("create employee position unavailable",
				zap.String("position", *positionName),
				zap.Error(err),
			)
			return EmployeeResponse{}, err
		}
	}

	dept, err := s.resolveDepartment(ctx, req.DepartmentID)
	if err != nil {
		return EmployeeResponse{}, err
	}

	explicitID := strings.TrimSpace(req.EmployeeID)
	managerID := trimmedPtr(req.ManagerID)
	if managerID != nil {
		if explicitID != "" && *managerID == explicitID {
			return EmployeeResponse{}, employeeerrors.ErrSelfManager
		}
		if err := s.ensureManagerExists(ctx, s.repo, *managerID); err != nil {
			return EmployeeResponse{}, err
		}
	}

	empl := &Employee{
		AccountID:    acc.ID,
		Position:     positionName,
		DepartmentID: req.DepartmentID,
		ManagerID:    managerID,
		HireDate:     hireDate,
		Status:       status,
	}

	if err := s.persistNew(ctx, empl, explicitID); err != nil {
		return EmployeeResponse{}, err
	}

	if positionName != nil {
		s.runSideEffect(ctx, "create", "position_assign", empl.EmployeeID, func() error {
			return s.guard.OnAssign(ctx, *positionName, status)
		})
	}
	s.runSideEffect(ctx, "create", "department_recount", empl.EmployeeID, func() error {
		return s.counter.Recount(ctx, empl.DepartmentID)
	})
	s.recorder.Record(ctx, workflow.Entry{
		Type:       workflow.TypeOnboarding,
		EmployeeID: empl.EmployeeID,
		Details:    workflow.OnboardingDetails(departmentName(dept), derefString(positionName), hireDate),
	})
	s.invalidateOptions(ctx)

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.EmployeeID),
	)

	return s.reload(ctx, empl), nil
}

// persistNew inserts empl, retrying with a freshly derived identifier while
// generated candidates collide on the primary key. An explicit identifier
// gets a single attempt.
func (s *service) persistNew(ctx context.Context, empl *Employee, explicitID string) error {
	attempts := maxIDAttempts
	if explicitID != "" {
		attempts = 1
	}

	for attempt := 1; attempt <= attempts; attempt++ {
		err := s.insertOnce(ctx, empl, explicitID)
		if err == nil {
			return nil
		}
		if explicitID == "" && isIDCollision(err) {
			s.logger.Warn("generated employee id collided, retrying",
				zap.String("employee_id", empl.EmployeeID),
				zap.Int("attempt", attempt),
			)
			continue
		}

		mapped := mapRepositoryError(err)
		var appErr *apperror.AppError
		if !errors.As(mapped, &appErr) {
			s.logger.Error("create employee persist failed", zap.Error(err))
		}
		return mapped
	}

	s.logger.Error("create employee id generation exhausted", zap.Int("attempts", attempts))
	return employeeerrors.ErrIDGenerationExhausted
}

func (s *service) insertOnce(ctx context.Context, empl *Employee, explicitID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if explicitID != "" {
		exists, err := qtx.ExistsByID(ctx, explicitID)
		if err != nil {
			return err
		}
		if exists {
			return employeeerrors.ErrEmployeeIDAlreadyExists
		}
		empl.EmployeeID = explicitID
	} else {
		id, err := NewIDGenerator(qtx).NextEmployeeID(ctx)
		if err != nil {
			return err
		}
		empl.EmployeeID = id
	}

	if empl.Position != nil {
		if err := s.guard.CheckAssign(ctx, *empl.Position, empl.Status, empl.EmployeeID); err != nil {
			return err
		}
	}

	if err := qtx.Create(ctx, empl); err != nil {
		return err
	}

	if err := s.writeOutbox(ctx, tx, events.EmployeeOnboarded, empl.EmployeeID, empl.DepartmentID); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	employees, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(employees), nil
}

func (s *service) GetOptions(ctx context.Context) ([]EmployeeOptionResponse, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, EmployeeOptionsKey).Result()
		if err == nil {
			var resp []EmployeeOptionResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			s.logger.Warn("read employee options cache failed", zap.Error(err))
		}
	}

	v, err, _ := s.sf.Do(EmployeeOptionsKey, func() (interface{}, error) {
		employees, err := s.repo.FindOptions(ctx)
		if err != nil {
			return nil, err
		}

		resp := mapToOptionResponse(employees)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, EmployeeOptionsKey, jsonData, optionsCacheTTL).Err(); err != nil {
					s.logger.Warn("write employee options cache failed", zap.Error(err))
				}
			}
		}

		return resp, nil
	})
	if err != nil {
		s.logger.Error("get employee options failed", zap.Error(err))
		return nil, err
	}

	return v.([]EmployeeOptionResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*empl, 0), nil
}

func (s *service) NextID(ctx context.Context) (NextIDResponse, error) {
	id, err := NewIDGenerator(s.repo).NextEmployeeID(ctx)
	if err != nil {
		s.logger.Error("derive next employee id failed", zap.Error(err))
		return NextIDResponse{}, err
	}
	return NextIDResponse{EmployeeID: id}, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	id = strings.TrimSpace(id)
	if id == "" {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	s.logger.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)

	var hireDate *time.Time
	if req.HireDate.Set && req.HireDate.Valid {
		parsed, err := parseHireDate(&req.HireDate.Value)
		if err != nil {
			return EmployeeResponse{}, err
		}
		hireDate = parsed
	}
	var status *string
	if req.Status != nil {
		// An explicit empty status on update is not a request for the default.
		if strings.TrimSpace(*req.Status) == "" {
			return EmployeeResponse{}, employeeerrors.ErrInvalidStatus
		}
		normalized, err := normalizeStatus(*req.Status)
		if err != nil {
			return EmployeeResponse{}, err
		}
		status = &normalized
	}
	var managerID *string
	if req.ManagerID.Set && req.ManagerID.Valid {
		managerID = trimmedPtr(&req.ManagerID.Value)
		if managerID != nil && *managerID == id {
			return EmployeeResponse{}, employeeerrors.ErrSelfManager
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	current, err := qtx.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	next := *current
	beforeEmail := accountEmail(current.Account)
	afterEmail := beforeEmail
	beforeDept := ""
	if current.Department != nil {
		beforeDept = current.Department.Name
	}
	afterDept := beforeDept

	if req.AccountID != nil || req.Email != nil {
		email := ""
		if req.Email != nil {
			email = *req.Email
		}
		acc, err := s.resolveAccount(ctx, req.AccountID, email)
		if err != nil {
			return EmployeeResponse{}, err
		}
		if acc.ID != current.AccountID {
			if err := s.ensureAccountFree(ctx, acc.ID, id); err != nil {
				return EmployeeResponse{}, err
			}
		}
		next.AccountID = acc.ID
		afterEmail = acc.Email
	}

	if req.Position.Set {
		var name *string
		if req.Position.Valid {
			name = trimmedPtr(&req.Position.Value)
		}
		if name != nil && !equalStringPtr(name, current.Position) {
			if err := s.guard.CheckAvailable(ctx, *name); err != nil {
				s.logger.Warn("update employee position unavailable",
					zap.String("employee_id", id),
					zap.String("position", *name),
					zap.Error(err),
				)
				return EmployeeResponse{}, err
			}
		}
		next.Position = name
	}

	if req.DepartmentID.Set {
		var deptID *uint
		if req.DepartmentID.Valid {
			v := req.DepartmentID.Value
			deptID = &v
		}
		dept, err := s.resolveDepartment(ctx, deptID)
		if err != nil {
			return EmployeeResponse{}, err
		}
		next.DepartmentID = deptID
		afterDept = departmentName(dept)
	}

	if req.ManagerID.Set {
		if managerID != nil && !equalStringPtr(managerID, current.ManagerID) {
			if err := s.ensureManagerExists(ctx, qtx, *managerID); err != nil {
				return EmployeeResponse{}, err
			}
		}
		next.ManagerID = managerID
	}

	if req.HireDate.Set {
		next.HireDate = hireDate
	}
	if status != nil {
		next.Status = *status
	}

	wasHolder := holdsPrivileged(current.Position, current.Status)
	isHolder := holdsPrivileged(next.Position, next.Status)
	if isHolder && !wasHolder {
		if err := s.guard.CheckAssign(ctx, *next.Position, next.Status, id); err != nil {
			s.logger.Warn("update employee president gate rejected", zap.String("employee_id", id), zap.Error(err))
			return EmployeeResponse{}, err
		}
	}

	if err := qtx.Update(ctx, &next); err != nil {
		mapped := mapRepositoryError(err)
		var appErr *apperror.AppError
		if !errors.As(mapped, &appErr) {
			s.logger.Error("update employee persist failed", zap.String("employee_id", id), zap.Error(err))
		}
		return EmployeeResponse{}, mapped
	}

	deptChanged := !equalUintPtr(current.DepartmentID, next.DepartmentID)
	eventType := events.EmployeeUpdated
	if deptChanged {
		eventType = events.EmployeeTransferred
	}
	if err := s.writeOutbox(ctx, tx, eventType, id, current.DepartmentID, next.DepartmentID); err != nil {
		s.logger.Error("update employee outbox persist failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	if deptChanged {
		s.runSideEffect(ctx, "update", "department_recount", id, func() error {
			return s.counter.Recount(ctx, current.DepartmentID)
		})
		s.runSideEffect(ctx, "update", "department_recount", id, func() error {
			return s.counter.Recount(ctx, next.DepartmentID)
		})
		s.recorder.Record(ctx, workflow.Entry{
			Type:       workflow.TypeTransfer,
			EmployeeID: id,
			Details:    workflow.TransferDetails(beforeDept, afterDept),
		})
	}

	switch {
	case wasHolder && !isHolder:
		s.runSideEffect(ctx, "update", "position_vacate", id, func() error {
			return s.guard.OnVacate(ctx, *current.Position)
		})
	case isHolder && !wasHolder:
		s.runSideEffect(ctx, "update", "position_assign", id, func() error {
			return s.guard.OnAssign(ctx, *next.Position, next.Status)
		})
	}

	changes := make([]workflow.FieldChange, 0, 6)
	if current.AccountID != next.AccountID {
		changes = append(changes, workflow.FieldChange{Field: "account", From: beforeEmail, To: afterEmail})
	}
	if !equalStringPtr(current.Position, next.Position) {
		changes = append(changes, workflow.FieldChange{Field: "position", From: derefString(current.Position), To: derefString(next.Position)})
	}
	if deptChanged {
		changes = append(changes, workflow.FieldChange{Field: "department", From: beforeDept, To: afterDept})
	}
	if !equalDate(current.HireDate, next.HireDate) {
		changes = append(changes, workflow.FieldChange{Field: "hire_date", From: formatDate(current.HireDate), To: formatDate(next.HireDate)})
	}
	if current.Status != next.Status {
		changes = append(changes, workflow.FieldChange{Field: "status", From: current.Status, To: next.Status})
	}
	if !equalStringPtr(current.ManagerID, next.ManagerID) {
		changes = append(changes, workflow.FieldChange{Field: "manager", From: derefString(current.ManagerID), To: derefString(next.ManagerID)})
	}
	s.recorder.Record(ctx, workflow.Entry{
		Type:       workflow.TypeFieldUpdates,
		EmployeeID: id,
		Details:    workflow.FieldUpdatesDetails(changes),
		Changes:    changes,
	})

	s.invalidateOptions(ctx)

	s.logger.Info("update employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
		zap.Int("changed_fields", len(changes)),
	)

	return s.reload(ctx, &next), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	rid := contextutil.GetRequestID(ctx)
	id = strings.TrimSpace(id)
	if id == "" {
		return employeeerrors.ErrInvalidEmployeeID
	}
	s.logger.Debug("delete employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	deptName := ""
	if current.Department != nil {
		deptName = current.Department.Name
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.ClearManagerReferences(ctx, id); err != nil {
		s.logger.Error("delete employee clear manager references failed", zap.String("employee_id", id), zap.Error(err))
		return err
	}
	if err := qtx.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}
	if err := s.writeOutbox(ctx, tx, events.EmployeeDeleted, id, current.DepartmentID); err != nil {
		s.logger.Error("delete employee outbox persist failed", zap.String("employee_id", id), zap.Error(err))
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	s.recorder.Record(ctx, workflow.Entry{
		Type:       workflow.TypeEmployeeDeleted,
		EmployeeID: id,
		Details:    workflow.DeletionDetails(deptName),
	})
	s.runSideEffect(ctx, "delete", "department_recount", id, func() error {
		return s.counter.Recount(ctx, current.DepartmentID)
	})
	if current.Position != nil && position.IsPrivileged(*current.Position) {
		s.runSideEffect(ctx, "delete", "position_vacate", id, func() error {
			return s.guard.OnVacate(ctx, *current.Position)
		})
	}
	s.invalidateOptions(ctx)

	s.logger.Info("delete employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)
	return nil
}

func (s *service) resolveAccount(ctx context.Context, accountID *uint, email string) (*account.Account, error) {
	var (
		acc *account.Account
		err error
	)
	switch {
	case accountID != nil:
		acc, err = s.accounts.FindByID(ctx, *accountID)
	case strings.TrimSpace(email) != "":
		acc, err = s.accounts.FindByEmail(ctx, email)
	default:
		return nil, accounterrors.ErrAccountReferenceRequired
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, accounterrors.ErrAccountNotFound
		}
		s.logger.Error("resolve account failed", zap.Error(err))
		return nil, err
	}
	return acc, nil
}

// ensureAccountFree fails when accountID already backs an employee other
// than selfID.
func (s *service) ensureAccountFree(ctx context.Context, accountID uint, selfID string) error {
	linked, err := s.repo.FindByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		s.logger.Error("check account link failed", zap.Uint("account_id", accountID), zap.Error(err))
		return err
	}
	if linked.EmployeeID == selfID {
		return nil
	}
	s.logger.Warn("account already linked",
		zap.Uint("account_id", accountID),
		zap.String("linked_employee_id", linked.EmployeeID),
	)
	return employeeerrors.ErrAccountAlreadyLinked
}

func (s *service) resolveDepartment(ctx context.Context, departmentID *uint) (*department.Department, error) {
	if departmentID == nil {
		return nil, nil
	}
	dept, err := s.departments.FindByID(ctx, *departmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, departmenterrors.ErrDepartmentNotFound
		}
		s.logger.Error("resolve department failed", zap.Uint("department_id", *departmentID), zap.Error(err))
		return nil, err
	}
	return dept, nil
}

func (s *service) ensureManagerExists(ctx context.Context, repo Repository, managerID string) error {
	exists, err := repo.ExistsByID(ctx, managerID)
	if err != nil {
		s.logger.Error("check manager failed", zap.String("manager_id", managerID), zap.Error(err))
		return err
	}
	if !exists {
		return employeeerrors.ErrManagerNotFound
	}
	return nil
}

func (s *service) writeOutbox(ctx context.Context, tx *sql.Tx, eventType, employeeID string, departmentIDs ...*uint) error {
	if s.outbox == nil {
		return nil
	}

	rid := contextutil.GetRequestID(ctx)
	event := events.EmployeeLifecycleEvent{
		EventType:     eventType,
		RequestID:     rid,
		EmployeeID:    employeeID,
		DepartmentIDs: collectDepartmentIDs(departmentIDs...),
		OccurredAt:    time.Now().UTC(),
	}
	outboxEvent, err := kafka.NewOutboxEvent(aggregateType, employeeID, eventType, events.EmployeeLifecycleTopic, rid, event)
	if err != nil {
		return err
	}
	return s.outbox.WithTx(tx).Create(ctx, outboxEvent)
}

// runSideEffect executes a post-commit step; failures are logged and never
// reach the caller.
func (s *service) runSideEffect(ctx context.Context, operation, sideEffect, employeeID string, fn func() error) {
	if err := fn(); err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("employee side effect failed",
			zap.String("operation", operation),
			zap.String("side_effect", sideEffect),
			zap.String("employee_id", employeeID),
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.Error(err),
		)
	}
}

func (s *service) invalidateOptions(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, EmployeeOptionsKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.Error(err),
			zap.String("key", EmployeeOptionsKey),
		)
	}
}

// reload returns the stored view of empl, falling back to the in-memory
// entity when the read fails.
func (s *service) reload(ctx context.Context, empl *Employee) EmployeeResponse {
	stored, err := s.repo.FindByID(ctx, empl.EmployeeID)
	if err != nil {
		s.logger.Warn("reload employee failed", zap.String("employee_id", empl.EmployeeID), zap.Error(err))
		return mapToResponse(*empl, 0)
	}
	return mapToResponse(*stored, 0)
}

func parseHireDate(raw *string) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, strings.TrimSpace(*raw))
	if err != nil {
		return nil, employeeerrors.ErrInvalidHireDate
	}
	return &t, nil
}

func normalizeStatus(raw string) (string, error) {
	status := strings.ToLower(strings.TrimSpace(raw))
	switch status {
	case "":
		return StatusActive, nil
	case StatusActive, StatusInactive:
		return status, nil
	default:
		return "", employeeerrors.ErrInvalidStatus
	}
}

func holdsPrivileged(positionName *string, status string) bool {
	return positionName != nil && position.IsPrivileged(*positionName) && status == StatusActive
}

func accountEmail(acc *EmployeeAccount) string {
	if acc == nil {
		return ""
	}
	return acc.Email
}

func departmentName(dept *department.Department) string {
	if dept == nil {
		return ""
	}
	return dept.Name
}

func collectDepartmentIDs(ids ...*uint) []uint {
	out := make([]uint, 0, len(ids))
	seen := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		if id == nil {
			continue
		}
		if _, ok := seen[*id]; ok {
			continue
		}
		seen[*id] = struct{}{}
		out = append(out, *id)
	}
	return out
}
