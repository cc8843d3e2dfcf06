package engine

// GameObjectRef is a handle to a GameObject by UID.
// Holders resolve it against a Scene when they need the object, so a handle to a
// destroyed object simply resolves to nil.
type GameObjectRef struct {
	UID uint64 // 0 = none
}

// RefTo returns a handle to g, or an empty handle for nil.
func RefTo(g *GameObject) GameObjectRef {
	var r GameObjectRef
	r.Set(g)
	return r
}

// Get resolves the reference against scene.
func (r GameObjectRef) Get(scene *Scene) *GameObject {
	if r.UID == 0 || scene == nil {
		return nil
	}
	return scene.FindByUID(r.UID)
}

// IsValid reports whether the handle points at something. It does not check the scene.
func (r GameObjectRef) IsValid() bool {
	return r.UID != 0
}

func (r *GameObjectRef) Set(g *GameObject) {
	if g == nil {
		r.UID = 0
		return
	}
	r.UID = g.UID
}

func (r *GameObjectRef) Clear() {
	r.UID = 0
}
