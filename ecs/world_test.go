package ecs

import (
	"testing"

	"github.com/milk9111/wavecrawler/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int {
	return &i
}

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_destroy_middle", 3, 1},
		{"none_destroyed", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			require.Len(t, Entities(w), c.create)

			if c.destroyIndex < 0 {
				return
			}
			require.True(t, DestroyEntity(w, ents[c.destroyIndex]))
			assert.False(t, IsAlive(w, ents[c.destroyIndex]))
			assert.False(t, DestroyEntity(w, ents[c.destroyIndex]), "second destroy must be a no-op")
			assert.Len(t, Entities(w), c.create-1)
		})
	}
}

func TestStaleHandleAfterSlotReuse(t *testing.T) {
	w := NewWorld()
	k := component.NewComponentKind[int]()

	old := CreateEntity(w)
	require.NoError(t, Add(w, old, k, intPtr(1)))
	require.True(t, DestroyEntity(w, old))

	fresh := CreateEntity(w)
	assert.Equal(t, old.id(), fresh.id(), "slot should be recycled")
	assert.NotEqual(t, old, fresh)
	assert.False(t, IsAlive(w, old))
	assert.False(t, Has(w, fresh, k), "components must not leak into a recycled slot")

	_, ok := Get(w, old, k)
	assert.False(t, ok)
	assert.ErrorIs(t, Add(w, old, k, intPtr(2)), component.ErrEntityNotAlive)
}

func TestComponents(t *testing.T) {
	w := NewWorld()
	ki := component.NewComponent[int]()
	ks := component.NewComponent[string]()
	e := CreateEntity(w)

	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "add_and_get",
			run: func(t *testing.T) {
				require.NoError(t, Add(w, e, ki.Kind(), intPtr(10)))
				v, ok := Get(w, e, ki.Kind())
				require.True(t, ok)
				assert.Equal(t, 10, *v)
			},
		},
		{
			name: "pointer_is_shared",
			run: func(t *testing.T) {
				v, _ := Get(w, e, ki.Kind())
				*v = 11
				again, _ := Get(w, e, ki.Kind())
				assert.Equal(t, 11, *again)
			},
		},
		{
			name: "kinds_are_independent",
			run: func(t *testing.T) {
				s := "tag"
				require.NoError(t, Add(w, e, ks.Kind(), &s))
				assert.True(t, Has(w, e, ks.Kind()))
				assert.True(t, Remove(w, e, ks.Kind()))
				assert.False(t, Has(w, e, ks.Kind()))
				assert.True(t, Has(w, e, ki.Kind()))
			},
		},
		{
			name: "nil_value_rejected",
			run: func(t *testing.T) {
				assert.ErrorIs(t, Add[int](w, e, ki.Kind(), nil), component.ErrNilComponent)
			},
		},
		{
			name: "zero_kind_rejected",
			run: func(t *testing.T) {
				var zero component.ComponentKind[int]
				assert.ErrorIs(t, Add(w, e, zero, intPtr(1)), component.ErrInvalidComponentKind)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

func TestForEach(t *testing.T) {
	t.Run("skips_entities_without_component", func(t *testing.T) {
		w := NewWorld()
		k := component.NewComponentKind[int]()
		e1 := CreateEntity(w)
		e2 := CreateEntity(w)
		e3 := CreateEntity(w)
		require.NoError(t, Add(w, e1, k, intPtr(1)))
		require.NoError(t, Add(w, e3, k, intPtr(3)))

		var seen []Entity
		ForEach(w, k, func(e Entity, _ *int) { seen = append(seen, e) })
		assert.ElementsMatch(t, []Entity{e1, e3}, seen)
		assert.NotContains(t, seen, e2)
	})

	t.Run("destroyed_during_walk", func(t *testing.T) {
		w := NewWorld()
		k := component.NewComponentKind[int]()
		a := CreateEntity(w)
		b := CreateEntity(w)
		require.NoError(t, Add(w, a, k, intPtr(1)))
		require.NoError(t, Add(w, b, k, intPtr(2)))

		visits := 0
		ForEach(w, k, func(e Entity, _ *int) {
			visits++
			DestroyEntity(w, a)
			DestroyEntity(w, b)
		})
		assert.Equal(t, 1, visits)
	})

	t.Run("added_during_walk_not_visited", func(t *testing.T) {
		w := NewWorld()
		k := component.NewComponentKind[int]()
		require.NoError(t, Add(w, CreateEntity(w), k, intPtr(1)))

		visits := 0
		ForEach(w, k, func(e Entity, _ *int) {
			visits++
			_ = Add(w, CreateEntity(w), k, intPtr(2))
		})
		assert.Equal(t, 1, visits)
		assert.Equal(t, 2, Count(w, k))
	})
}

func TestForEach3(t *testing.T) {
	w := NewWorld()
	ka := component.NewComponentKind[int]()
	kb := component.NewComponentKind[int]()
	kc := component.NewComponentKind[int]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)
	require.NoError(t, Add(w, e1, ka, intPtr(1)))
	require.NoError(t, Add(w, e2, ka, intPtr(2)))
	require.NoError(t, Add(w, e2, kb, intPtr(3)))
	require.NoError(t, Add(w, e2, kc, intPtr(5)))
	require.NoError(t, Add(w, e3, kb, intPtr(4)))

	var res []Entity
	ForEach3(w, ka, kb, kc, func(e Entity, a, b, c *int) {
		res = append(res, e)
		assert.Equal(t, 10, *a+*b+*c)
	})
	assert.Equal(t, []Entity{e2}, res)

	require.True(t, DestroyEntity(w, e2))
	res = nil
	ForEach3(w, ka, kb, kc, func(e Entity, _, _, _ *int) { res = append(res, e) })
	assert.Empty(t, res)
}

func TestFirstAndOrder(t *testing.T) {
	w := NewWorld()
	k := component.NewComponentKind[int]()

	_, ok := First(w, k)
	assert.False(t, ok)

	a := CreateEntity(w)
	b := CreateEntity(w)
	c := CreateEntity(w)
	require.NoError(t, Add(w, c, k, intPtr(3)))
	require.NoError(t, Add(w, b, k, intPtr(2)))

	first, ok := First(w, k)
	require.True(t, ok)
	assert.Equal(t, b, first)

	require.True(t, DestroyEntity(w, b))
	d := CreateEntity(w)
	assert.Equal(t, []Entity{a, c, d}, Entities(w))
}

func TestEventQueue(t *testing.T) {
	w := NewWorld()
	q := w.Events()
	q.Emit("a", 1)
	q.Push(Event{Type: "b"})
	assert.Equal(t, 2, q.Len())

	got := q.Drain()
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Type)
	assert.Equal(t, 1, got[0].Data)
	assert.Nil(t, q.Drain())

	q.Push(Event{Type: "x"}, Event{Type: "y"}, Event{Type: "x", Data: 2})
	xs := OfType(q.Drain(), "x")
	require.Len(t, xs, 2)
	assert.Equal(t, 2, xs[1].Data)

	var nilQueue *EventQueue
	nilQueue.Emit("dropped", nil)
	assert.Zero(t, nilQueue.Len())
}

func TestEntityHandle(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)
	assert.Equal(t, "1.0", e.String())
	assert.Equal(t, e, FromRaw(e.Raw()))
	assert.False(t, Entity(0).Valid())

	DestroyEntity(w, e)
	reused := CreateEntity(w)
	assert.Equal(t, "1.1", reused.String())
	assert.False(t, IsAlive(w, FromRaw(e.Raw())))
}

func TestScheduler(t *testing.T) {
	var order []string
	s := NewScheduler(
		SystemFunc(func(_ *World, dt float64) { order = append(order, "first") }),
	)
	s.Add(nil)
	s.Add(SystemFunc(func(_ *World, dt float64) {
		order = append(order, "second")
		assert.InDelta(t, 0.016, dt, 1e-9)
	}))
	s.Update(NewWorld(), 0.016)

	assert.Equal(t, []string{"first", "second"}, order)
	assert.Len(t, s.Systems(), 2)
}
