package play

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"farmstead/internal/app/action"
	"farmstead/internal/app/observe"
	"farmstead/internal/app/setup"
	"farmstead/internal/domain/farm"
)

// DefaultStartMoney lets a desktop player buy a first seed. The HTTP
// service starts farms at 0 unless configured.
const DefaultStartMoney = 10

// StartMoney parses a start-money setting; blank means DefaultStartMoney.
func StartMoney(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultStartMoney, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("start money %q: %w", raw, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("start money %d must not be negative", n)
	}
	return n, nil
}

// Session drives one farm from keyboard input for a local client. It is not
// safe for concurrent use; the desktop loop calls it from its update
// goroutine only.
type Session struct {
	Setup   setup.UseCase
	Action  action.UseCase
	Observe observe.UseCase

	farmID  string
	mapName string
	view    observe.Response
	message string
}

func (s *Session) Start(ctx context.Context, mapName string) error {
	resp, err := s.Setup.Execute(ctx, setup.Request{MapName: mapName})
	if err != nil {
		return err
	}
	s.farmID = resp.FarmID
	s.mapName = strings.TrimSpace(mapName)
	if s.mapName == "" {
		s.mapName = setup.DefaultMapName
	}
	if err := s.refresh(ctx); err != nil {
		return err
	}
	s.message = fmt.Sprintf("day %d. w/a/s/d to move, 1-%d to pick an item", resp.State.Day, len(s.items()))
	return nil
}

func (s *Session) FarmID() string { return s.farmID }

// MapName is the map the current farm was started from.
func (s *Session) MapName() string        { return s.mapName }
func (s *Session) View() observe.Response { return s.view }
func (s *Session) Message() string        { return s.message }

// PressKey runs the intent bound to key. Unbound keys are ignored and
// report false.
func (s *Session) PressKey(ctx context.Context, key string) bool {
	in, ok := action.IntentForKey(key)
	if !ok {
		return false
	}
	s.run(ctx, in)
	return true
}

// PressKeys runs every bound key for which pressed reports true, in
// action.KeyBindings order, and returns how many ran.
func (s *Session) PressKeys(ctx context.Context, pressed func(key string) bool) int {
	n := 0
	for _, key := range action.KeyBindings() {
		if pressed(key) && s.PressKey(ctx, key) {
			n++
		}
	}
	return n
}

// SelectIndex selects the item at the 1-based position in the catalog.
func (s *Session) SelectIndex(ctx context.Context, n int) bool {
	items := s.items()
	if n < 1 || n > len(items) {
		return false
	}
	s.run(ctx, action.Intent{Type: action.ActionSelect, Item: items[n-1]})
	return true
}

func (s *Session) items() []string {
	out := make([]string, 0, len(s.view.Prices))
	for _, p := range s.view.Prices {
		out = append(out, p.Item)
	}
	return out
}

func (s *Session) run(ctx context.Context, in action.Intent) {
	resp, err := s.Action.Execute(ctx, action.Request{FarmID: s.farmID, Intent: in})
	if err != nil {
		s.message = describeError(in, err)
		return
	}
	s.message = describeEvents(resp)
	if err := s.refresh(ctx); err != nil {
		s.message = err.Error()
	}
}

func (s *Session) refresh(ctx context.Context) error {
	view, err := s.Observe.Execute(ctx, observe.Request{FarmID: s.farmID})
	if err != nil {
		return err
	}
	s.view = view
	return nil
}

func describeError(in action.Intent, err error) string {
	var rejected *action.ActionRejectedError
	if errors.As(err, &rejected) {
		return fmt.Sprintf("can't %s: %s", in.Type, rejected.Code())
	}
	return fmt.Sprintf("%s failed: %v", in.Type, err)
}

func describeEvents(resp action.Response) string {
	if len(resp.Events) == 0 {
		return ""
	}
	evt := resp.Events[len(resp.Events)-1]
	switch evt.Type {
	case farm.EventPlantHarvested:
		return fmt.Sprintf("harvested %v x%v", evt.Payload["item"], evt.Payload["count"])
	case farm.EventItemBought:
		return fmt.Sprintf("bought %v", evt.Payload["item"])
	case farm.EventItemSold:
		return fmt.Sprintf("sold %v", evt.Payload["item"])
	case farm.EventItemSelected:
		return fmt.Sprintf("holding %v", evt.Payload["item"])
	case farm.EventPlantAdded:
		return fmt.Sprintf("planted %v", evt.Payload["variant"])
	case farm.EventDayAdvanced:
		return fmt.Sprintf("day %d", resp.State.Day)
	case farm.EventPlayerMoved:
		return ""
	default:
		return evt.Type
	}
}
