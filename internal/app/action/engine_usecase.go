package action

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"farmstead/internal/app/ports"
	"farmstead/internal/app/stateview"
	"farmstead/internal/domain/farm"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
)

var (
	ErrInvalidRequest      = errors.New("invalid action request")
	ErrInvalidActionParams = errors.New("invalid action params")
	ErrActionRejected      = errors.New("action rejected")
)

// ActionRejectedError reports a request the farm refused. The farm is left
// unchanged.
type ActionRejectedError struct {
	Type ActionType
	Err  error
}

func (e *ActionRejectedError) Error() string {
	return fmt.Sprintf("%s rejected: %v", e.Type, e.Err)
}

func (e *ActionRejectedError) Unwrap() []error {
	return []error{ErrActionRejected, e.Err}
}

// Code is the stable machine-readable reason for the rejection.
func (e *ActionRejectedError) Code() string {
	return RejectionCode(e.Err)
}

func RejectionCode(err error) string {
	switch {
	case errors.Is(err, farm.ErrExhausted):
		return "exhausted"
	case errors.Is(err, farm.ErrInvalidTarget):
		return "invalid_target"
	case errors.Is(err, farm.ErrNotReady):
		return "not_ready"
	case errors.Is(err, farm.ErrOccupied):
		return "occupied"
	case errors.Is(err, farm.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, farm.ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, farm.ErrNoPlant):
		return "no_plant"
	case errors.Is(err, farm.ErrUnknownItem):
		return "unknown_item"
	case errors.Is(err, farm.ErrNotForSale):
		return "not_for_sale"
	case errors.Is(err, farm.ErrNoSeedSelected):
		return "no_seed_selected"
	case errors.Is(err, farm.ErrInvalidDirection):
		return "invalid_direction"
	default:
		return "rejected"
	}
}

type UseCase struct {
	TxManager ports.TxManager
	Farms     ports.FarmRepository
	Events    ports.EventRepository
	Metrics   ports.ActionMetrics
	Now       func() time.Time
	NewID     func() string
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	ac, err := u.ValidateRequest(req)
	if err != nil {
		return Response{}, err
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	ac.NowAt = nowFn()

	var out Response
	err = u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		model, err := u.Farms.Get(txCtx, ac.FarmID)
		if err != nil {
			return err
		}
		ac.Model = model
		ac.Target = resolveTarget(model, ac.Intent)

		if err := ac.Spec.Handler.Apply(&ac); err != nil {
			if isDomainRejection(err) {
				return &ActionRejectedError{Type: ac.Spec.Type, Err: err}
			}
			return err
		}

		events := u.stampEvents(&ac)
		if u.Events != nil && len(events) > 0 {
			if err := u.Events.Append(txCtx, ac.FarmID, events); err != nil {
				return err
			}
		}
		if err := u.Farms.Save(txCtx, ac.FarmID, model); err != nil {
			return err
		}
		out = Response{
			ResultCode: ResultOK,
			State:      stateview.FromModel(ac.FarmID, model),
			Events:     events,
		}
		return nil
	})
	if err != nil {
		u.recordError(ac, err)
		return Response{}, err
	}
	if u.Metrics != nil {
		u.Metrics.RecordSuccess(string(ac.Spec.Type))
	}
	return out, nil
}

func (u UseCase) ValidateRequest(req Request) (ActionContext, error) {
	req.FarmID = strings.TrimSpace(req.FarmID)
	req.Intent.Type = ActionType(strings.ToLower(strings.TrimSpace(string(req.Intent.Type))))
	req.Intent.Item = strings.TrimSpace(req.Intent.Item)
	if req.FarmID == "" {
		return ActionContext{}, ErrInvalidRequest
	}
	spec, ok := actionRegistry()[req.Intent.Type]
	if !ok {
		return ActionContext{}, fmt.Errorf("%w: unsupported action type %q", ErrInvalidRequest, req.Intent.Type)
	}
	if validate, ok := actionParamValidators()[req.Intent.Type]; ok && !validate(req.Intent) {
		return ActionContext{}, ErrInvalidActionParams
	}
	return ActionContext{FarmID: req.FarmID, Intent: req.Intent, Spec: spec}, nil
}

func (u UseCase) stampEvents(ac *ActionContext) []farm.Event {
	newID := u.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	for i := range ac.Events {
		evt := &ac.Events[i]
		evt.ID = newID()
		evt.OccurredAt = ac.NowAt
		if evt.Payload == nil {
			evt.Payload = map[string]any{}
		}
		evt.Payload["farm_id"] = ac.FarmID
		evt.Payload["action"] = string(ac.Spec.Type)
		evt.Payload["day"] = ac.Model.DaysElapsed()
	}
	return ac.Events
}

func (u UseCase) recordError(ac ActionContext, err error) {
	var rejected *ActionRejectedError
	if errors.As(err, &rejected) {
		hlog.Debugf("farm %s: %s rejected: %v", ac.FarmID, ac.Spec.Type, rejected.Err)
		if u.Metrics != nil {
			u.Metrics.RecordRejected(rejected.Code())
		}
		return
	}
	hlog.Warnf("farm %s: %s failed: %v", ac.FarmID, ac.Spec.Type, err)
	if u.Metrics != nil {
		u.Metrics.RecordFailure()
	}
}

func isDomainRejection(err error) bool {
	for _, target := range []error{
		farm.ErrInvalidTarget,
		farm.ErrNotReady,
		farm.ErrOccupied,
		farm.ErrInsufficientFunds,
		farm.ErrInsufficientStock,
		farm.ErrNoPlant,
		farm.ErrUnknownItem,
		farm.ErrNotForSale,
		farm.ErrNoSeedSelected,
		farm.ErrExhausted,
		farm.ErrInvalidDirection,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
