package component

import "emoji-solitaire/internal/ecs"

// RegisterAll registers every table component with w. It panics if any kind
// is already registered, so a miswired world fails at startup.
func RegisterAll(w *ecs.World) {
	ecs.MustRegister[Card](w)
	ecs.MustRegister[Position](w)
	ecs.MustRegister[StackInfo](w)
	ecs.MustRegister[DraggingInfo](w)
	ecs.MustRegister[Held](w)
	ecs.MustRegister[Player](w)
	ecs.MustRegister[GameState](w)
}
