package content

import (
	"fmt"
	"strings"
)

// Registry is the injected read-only content catalog. It is constructed once,
// validated, and passed by reference to the components that need it.
type Registry struct {
	lessons []Lesson
	byID    map[string]*Lesson
	items   map[string]Item // item ID -> item, across all lessons
}

// NewRegistry builds and validates a registry from the given lessons.
func NewRegistry(lessons []Lesson) (*Registry, error) {
	if err := validateLessons(lessons); err != nil {
		return nil, err
	}

	r := &Registry{
		lessons: lessons,
		byID:    make(map[string]*Lesson, len(lessons)),
		items:   make(map[string]Item),
	}
	for i := range r.lessons {
		l := &r.lessons[i]
		r.byID[l.ID] = l
		for _, item := range l.Items() {
			r.items[item.ID()] = item
		}
	}
	return r, nil
}

// Default builds the registry from the built-in catalog. Panics on a broken
// built-in catalog, which is a programmer error caught by tests.
func Default() *Registry {
	r, err := NewRegistry(BuiltinLessons())
	if err != nil {
		panic(fmt.Sprintf("built-in catalog invalid: %v", err))
	}
	return r
}

// Lessons returns all lessons in catalog order.
func (r *Registry) Lessons() []Lesson {
	return r.lessons
}

// Lesson returns the lesson with the given ID.
func (r *Registry) Lesson(id string) (*Lesson, bool) {
	l, ok := r.byID[id]
	return l, ok
}

// Item returns the practice item with the given ID, across all lessons.
func (r *Registry) Item(id string) (Item, bool) {
	it, ok := r.items[id]
	return it, ok
}

// Unlocked reports whether all of the lesson's prerequisites are in the
// completed set.
func (r *Registry) Unlocked(lessonID string, completed map[string]bool) bool {
	l, ok := r.byID[lessonID]
	if !ok {
		return false
	}
	for _, p := range l.Prerequisites {
		if !completed[p] {
			return false
		}
	}
	return true
}

// validateLessons performs structural checks: unique IDs, resolvable and
// acyclic prerequisites, at least one root, positive XP rewards.
// Returns a combined error describing all problems found.
func validateLessons(lessons []Lesson) error {
	var errs []string

	idSet := make(map[string]bool, len(lessons))
	for _, l := range lessons {
		if idSet[l.ID] {
			errs = append(errs, fmt.Sprintf("duplicate lesson ID: %q", l.ID))
		}
		idSet[l.ID] = true
		if l.XPReward <= 0 {
			errs = append(errs, fmt.Sprintf("lesson %q: XPReward must be > 0, got %d", l.ID, l.XPReward))
		}
	}

	for _, l := range lessons {
		for _, p := range l.Prerequisites {
			if !idSet[p] {
				errs = append(errs, fmt.Sprintf("lesson %q references nonexistent prerequisite %q", l.ID, p))
			}
		}
	}

	// Cycle check via Kahn's algorithm.
	inDegree := make(map[string]int, len(lessons))
	dependents := make(map[string][]string)
	for _, l := range lessons {
		inDegree[l.ID] = len(l.Prerequisites)
		for _, p := range l.Prerequisites {
			dependents[p] = append(dependents[p], l.ID)
		}
	}
	var queue []string
	for _, l := range lessons {
		if inDegree[l.ID] == 0 {
			queue = append(queue, l.ID)
		}
	}
	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, dep := range dependents[id] {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}
	if visited < len(lessons) {
		var cycleNodes []string
		for _, l := range lessons {
			if inDegree[l.ID] > 0 {
				cycleNodes = append(cycleNodes, l.ID)
			}
		}
		errs = append(errs, fmt.Sprintf("cycle detected involving lessons: %s", strings.Join(cycleNodes, ", ")))
	}

	if len(lessons) > 0 {
		hasRoot := false
		for _, l := range lessons {
			if len(l.Prerequisites) == 0 {
				hasRoot = true
				break
			}
		}
		if !hasRoot {
			errs = append(errs, "no root lessons found (at least one lesson must have no prerequisites)")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
