// pkg/collision/system.go
package collision

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"
	"sync"

	"github.com/EngoEngine/ecs"
	"golang.org/x/sync/errgroup"

	"github.com/opd-ai/go-sat/pkg/config"
	"github.com/opd-ai/go-sat/pkg/event"
	"github.com/opd-ai/go-sat/pkg/logging"
	"github.com/opd-ai/go-sat/pkg/physics"
)

// ShapeComponent attaches a named shape to an entity
type ShapeComponent struct {
	Name  string
	Shape physics.Hulled
}

// GetShapeComponent returns the component itself
func (c *ShapeComponent) GetShapeComponent() *ShapeComponent {
	return c
}

// Contact records one overlapping pair; A has the lower entity ID.
type Contact struct {
	A     uint64
	B     uint64
	NameA string
	NameB string
}

// Stats summarizes one collision pass
type Stats struct {
	Shapes   int
	Pairs    int
	Culled   int
	Skipped  int
	Contacts int
}

type shapeEntity struct {
	*ecs.BasicEntity
	*ShapeComponent
}

type pair struct {
	a, b shapeEntity
}

// System tests every pair of its entities' shapes for overlap each update
// and publishes a CollisionEvent per overlapping pair.
type System struct {
	cfg    config.SystemConfig
	bus    *event.Bus
	logger *logging.Logger

	mu       sync.RWMutex
	entities []shapeEntity
	contacts []Contact
	stats    Stats
}

// NewSystem creates a collision system. A nil bus disables events and a
// nil logger discards log output.
func NewSystem(cfg config.SystemConfig, bus *event.Bus, logger *logging.Logger) *System {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if logger == nil {
		logger = logging.NewLoggerTo(io.Discard, slog.LevelError, "")
	}
	return &System{cfg: cfg, bus: bus, logger: logger}
}

// Add registers an entity and its shape
func (s *System) Add(basic *ecs.BasicEntity, shape *ShapeComponent) {
	s.mu.Lock()
	s.entities = append(s.entities, shapeEntity{basic, shape})
	s.mu.Unlock()

	s.publish(event.NewShapeEvent(event.ShapeAdded, s, basic.ID(), shape.Name))
}

// Remove satisfies the ecs.System interface
func (s *System) Remove(basic ecs.BasicEntity) {
	s.mu.Lock()
	removed := -1
	var name string
	for i, e := range s.entities {
		if e.BasicEntity.ID() == basic.ID() {
			removed = i
			name = e.Name
			break
		}
	}
	if removed >= 0 {
		s.entities = append(s.entities[:removed], s.entities[removed+1:]...)
	}
	s.mu.Unlock()

	if removed >= 0 {
		s.publish(event.NewShapeEvent(event.ShapeRemoved, s, basic.ID(), name))
	}
}

// Update satisfies the ecs.System interface; it runs Check without a deadline.
func (s *System) Update(dt float32) {
	ctx := context.Background()
	if _, err := s.Check(ctx); err != nil {
		s.logger.Error(ctx, "Collision check failed", err)
	}
}

// Check tests all entity pairs, records the contacts and publishes them.
// Pairs whose shapes cannot be tested are counted as skipped.
func (s *System) Check(ctx context.Context) ([]Contact, error) {
	if err := ctx.Err(); err != nil {
		return nil, logging.WrapError(err, "collision check")
	}

	s.mu.RLock()
	entities := make([]shapeEntity, len(s.entities))
	copy(entities, s.entities)
	s.mu.RUnlock()

	stats := Stats{Shapes: len(entities)}
	pairs := s.candidatePairs(entities, &stats)

	contacts, skipped, err := s.narrowPhase(ctx, pairs)
	if err != nil {
		return nil, err
	}
	stats.Skipped = skipped
	stats.Contacts = len(contacts)

	s.mu.Lock()
	s.contacts = contacts
	s.stats = stats
	s.mu.Unlock()

	for _, c := range contacts {
		s.publish(event.NewCollisionEvent(s, c.A, c.B, c.NameA, c.NameB))
	}
	s.publish(&event.UpdateEvent{
		BaseEvent: event.BaseEvent{EventType: event.UpdateCompleted, Source: s},
		Shapes:    stats.Shapes,
		Pairs:     stats.Pairs,
		Culled:    stats.Culled,
		Contacts:  stats.Contacts,
	})
	s.logger.Debug(ctx, "Collision check completed",
		"shapes", stats.Shapes,
		"pairs", stats.Pairs,
		"culled", stats.Culled,
		"skipped", stats.Skipped,
		"contacts", stats.Contacts,
	)

	out := make([]Contact, len(contacts))
	copy(out, contacts)
	return out, nil
}

// candidatePairs lists every unordered pair, dropping those whose rectangle
// hulls are apart when broad phase culling is on.
func (s *System) candidatePairs(entities []shapeEntity, stats *Stats) []pair {
	var hulls []physics.Rectangle
	if s.cfg.BroadPhase {
		hulls = make([]physics.Rectangle, len(entities))
		for i, e := range entities {
			hulls[i] = e.Shape.RectangleHull()
		}
	}

	var pairs []pair
	for i := 0; i < len(entities); i++ {
		for j := i + 1; j < len(entities); j++ {
			stats.Pairs++
			if hulls != nil && !Rectangles(hulls[i], hulls[j]) {
				stats.Culled++
				continue
			}
			pairs = append(pairs, pair{entities[i], entities[j]})
		}
	}
	return pairs
}

// narrowPhase shards pairs across the configured workers
func (s *System) narrowPhase(ctx context.Context, pairs []pair) ([]Contact, int, error) {
	workers := min(s.cfg.Workers, max(len(pairs), 1))
	results := make([][]Contact, workers)
	skipped := make([]int, workers)

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			for i := w; i < len(pairs); i += workers {
				if err := gctx.Err(); err != nil {
					return err
				}
				p := pairs[i]
				hit, err := Overlaps(p.a.Shape, p.b.Shape)
				if err != nil {
					if errors.Is(err, ErrDegenerateShape) || errors.Is(err, ErrUnsupportedPair) {
						s.logger.Warn(gctx, "Skipping shape pair", "a", p.a.Name, "b", p.b.Name, "reason", err.Error())
						skipped[w]++
						continue
					}
					return err
				}
				if hit {
					results[w] = append(results[w], newContact(p.a, p.b))
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, logging.WrapError(err, "narrow phase")
	}

	var contacts []Contact
	total := 0
	for w := range results {
		contacts = append(contacts, results[w]...)
		total += skipped[w]
	}
	sort.Slice(contacts, func(i, j int) bool {
		if contacts[i].A != contacts[j].A {
			return contacts[i].A < contacts[j].A
		}
		return contacts[i].B < contacts[j].B
	})
	return contacts, total, nil
}

func newContact(a, b shapeEntity) Contact {
	if a.BasicEntity.ID() > b.BasicEntity.ID() {
		a, b = b, a
	}
	return Contact{A: a.BasicEntity.ID(), B: b.BasicEntity.ID(), NameA: a.Name, NameB: b.Name}
}

// Contacts returns the contacts found by the last check
func (s *System) Contacts() []Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Contact, len(s.contacts))
	copy(out, s.contacts)
	return out
}

// Stats returns the counters of the last check
func (s *System) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}

func (s *System) publish(e event.Event) {
	if s.bus != nil {
		s.bus.Publish(e)
	}
}
