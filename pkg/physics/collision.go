package physics

// CollisionKind tags how a collision resolved
type CollisionKind string

const (
	// CollisionMutual removes both participants
	CollisionMutual CollisionKind = "mutual"
	// CollisionCentral is an impact with a fixed body; only the
	// non-fixed participant is removed
	CollisionCentral CollisionKind = "central"
)

// CollisionEvent describes a resolved collision for the external
// log/notification consumer. Velocities are captured at impact.
type CollisionEvent struct {
	AID       string
	BID       string
	AVelocity Vec2
	BVelocity Vec2
	Kind      CollisionKind
}

// ResolveCollisions scans every unordered pair once, marking colliding
// bodies for removal, then applies all removals in a single filtering
// pass. The deferred mark-set guarantees a body marked mid-scan is
// never evaluated again. Returns the emitted events and the removed
// body identifiers in discovery order.
func ResolveCollisions(s *System) ([]CollisionEvent, []string) {
	marked := make(map[string]bool)
	var events []CollisionEvent
	var removed []string

	mark := func(id string) {
		if !marked[id] {
			marked[id] = true
			removed = append(removed, id)
		}
	}

	n := len(s.Bodies)
	for i := 0; i < n; i++ {
		a := &s.Bodies[i]
		if marked[a.ID] {
			continue
		}
		for j := i + 1; j < n; j++ {
			b := &s.Bodies[j]
			if marked[a.ID] {
				break
			}
			if marked[b.ID] {
				continue
			}
			if a.Position.Distance(b.Position) >= a.Radius+b.Radius {
				continue
			}

			switch {
			case a.Fixed && b.Fixed:
				// Two immovable bodies overlap only by scenario error
				continue
			case a.Fixed:
				mark(b.ID)
				events = append(events, CollisionEvent{
					AID: a.ID, BID: b.ID,
					AVelocity: a.Velocity, BVelocity: b.Velocity,
					Kind: CollisionCentral,
				})
			case b.Fixed:
				mark(a.ID)
				events = append(events, CollisionEvent{
					AID: a.ID, BID: b.ID,
					AVelocity: a.Velocity, BVelocity: b.Velocity,
					Kind: CollisionCentral,
				})
			default:
				mark(a.ID)
				mark(b.ID)
				events = append(events, CollisionEvent{
					AID: a.ID, BID: b.ID,
					AVelocity: a.Velocity, BVelocity: b.Velocity,
					Kind: CollisionMutual,
				})
			}
		}
	}

	if len(marked) > 0 {
		kept := s.Bodies[:0]
		for _, b := range s.Bodies {
			if !marked[b.ID] {
				kept = append(kept, b)
			}
		}
		s.Bodies = kept
	}

	return events, removed
}
