package replicate

import (
	"context"
	"math/rand"
	"testing"

	"emoji-solitaire/internal/component"
	"emoji-solitaire/internal/config"
	"emoji-solitaire/internal/ecs"
	"emoji-solitaire/internal/factory"
	"emoji-solitaire/internal/system"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWorld() *ecs.World {
	w := ecs.NewWorld()
	component.RegisterAll(w)
	return w
}

func dealtServer(t *testing.T) *ecs.World {
	t.Helper()
	w := newWorld()
	factory.NewPlayer(w, 1, "ada")
	factory.DealNewGame(w, config.DefaultLayout(), rand.New(rand.NewSource(11)))
	return w
}

func TestCaptureIsOrderedAndComplete(t *testing.T) {
	w := dealtServer(t)
	data := Capture(w)

	require.Len(t, data.Players, 1)
	assert.Equal(t, "ada", data.Players[0].Name)
	require.Len(t, data.Cards, factory.DeckSize)
	for i := 1; i < len(data.Cards); i++ {
		assert.Less(t, data.Cards[i-1].Entity, data.Cards[i].Entity)
	}
	require.NotNil(t, data.Game)
	assert.Equal(t, component.Playing, data.Game.Status)
}

func TestApplyReproducesServerState(t *testing.T) {
	server := dealtServer(t)
	replica := ecs.NewShared(newWorld())

	want := Capture(server)
	changed, err := Apply(context.Background(), replica, want)
	require.NoError(t, err)
	assert.True(t, changed)

	g, err := replica.Lock()
	require.NoError(t, err)
	got := Capture(g.World())
	g.Unlock()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("replica differs (-want +got):\n%s", diff)
	}
}

func TestApplySameSnapshotReportsNoChange(t *testing.T) {
	server := dealtServer(t)
	replica := ecs.NewShared(newWorld())
	data := Capture(server)

	_, err := Apply(context.Background(), replica, data)
	require.NoError(t, err)
	changed, err := Apply(context.Background(), replica, data)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestApplyTracksServerMutations(t *testing.T) {
	layout := config.DefaultLayout()
	server := dealtServer(t)
	replica := newWorld()
	ApplyWorld(replica, Capture(server))

	require.True(t, system.DealFromStock(server, layout))
	require.True(t, ApplyWorld(replica, Capture(server)))

	top, ok := system.TopCard(replica, component.Waste)
	require.True(t, ok)
	c, _ := ecs.Get[component.Card](replica, top)
	assert.True(t, c.FaceUp)

	// Redeal: the old card ids disappear from the replica.
	old := ecs.EntitiesWith[component.Card](replica)
	factory.DealNewGame(server, layout, rand.New(rand.NewSource(5)))
	require.True(t, ApplyWorld(replica, Capture(server)))
	for _, e := range old {
		assert.False(t, replica.IsAlive(e))
	}
	if diff := cmp.Diff(Capture(server), Capture(replica)); diff != "" {
		t.Fatalf("replica differs (-server +replica):\n%s", diff)
	}
}

func TestApplyAdvancesLocalAllocation(t *testing.T) {
	replica := newWorld()
	data := Capture(dealtServer(t))
	ApplyWorld(replica, data)

	fresh := replica.CreateEntity()
	for _, c := range data.Cards {
		assert.Greater(t, fresh, c.Entity)
	}
	assert.Greater(t, fresh, data.Game.Entity)
}

func TestApplyRecoversPoisonedReplica(t *testing.T) {
	replica := ecs.NewShared(newWorld())
	err := replica.Do(func(*ecs.World) { panic("render crashed") })
	require.Error(t, err)
	require.True(t, replica.Poisoned())

	changed, err := Apply(context.Background(), replica, Capture(dealtServer(t)))
	require.NoError(t, err)
	assert.True(t, changed)
}

func TestApplyRejectsDuplicateIDs(t *testing.T) {
	data := GameStateData{
		Players: []PlayerData{{Entity: 3, ID: 1, Name: "ada"}},
		Cards:   []CardData{{Entity: 3, Suit: component.Club, Rank: component.Ace}},
	}
	_, err := Apply(context.Background(), ecs.NewShared(newWorld()), data)
	assert.Error(t, err)
}

func TestEqual(t *testing.T) {
	a := GameStateData{Game: &GameData{Entity: 1}}
	b := GameStateData{Game: &GameData{Entity: 1}}
	assert.True(t, a.Equal(b))
	b.Game.Status = component.Won
	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(GameStateData{}))
	assert.True(t, GameStateData{}.Equal(GameStateData{Players: []PlayerData{}}))
}

func TestHeldCardsReplicateAsMarkers(t *testing.T) {
	layout := config.DefaultLayout()
	server := dealtServer(t)
	replica := newWorld()

	grabbed, ok := system.TopCard(server, component.Tableau(4))
	require.True(t, ok)
	pos, _ := ecs.Get[component.Position](server, grabbed)
	require.True(t, system.StartDrag(server, grabbed, pos.X, pos.Y))

	data := Capture(server)
	for _, c := range data.Cards {
		assert.Equal(t, c.Entity == grabbed, c.Held, "card %v", c.Entity)
	}
	ApplyWorld(replica, data)
	assert.Equal(t, map[ecs.Entity]bool{grabbed: true}, system.Dragged(replica))
	assert.False(t, ecs.Has[component.DraggingInfo](replica, grabbed))

	system.EndDrag(server, layout, grabbed, component.Tableau(4), system.AcceptAll)
	require.True(t, ApplyWorld(replica, Capture(server)))
	assert.Empty(t, system.Dragged(replica))
}
