package engine

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type countingComponent struct {
	BaseComponent
	starts  int
	updates int
}

func (c *countingComponent) Start()                   { c.starts++ }
func (c *countingComponent) Update(deltaTime float32) { c.updates++ }

type namer interface{ Name() string }

type namedComponent struct {
	BaseComponent
}

func (n *namedComponent) Name() string { return "named" }

func TestNewGameObject(t *testing.T) {
	obj := NewGameObject("TestObject")

	if obj.Name != "TestObject" {
		t.Errorf("Expected name 'TestObject', got '%s'", obj.Name)
	}

	if obj.UID == 0 {
		t.Error("UID should not be 0")
	}

	if obj.Transform.Rotation != rl.QuaternionIdentity() {
		t.Errorf("Expected identity rotation, got %v", obj.Transform.Rotation)
	}

	if obj.components == nil {
		t.Error("components slice should be initialized")
	}
}

func TestGameObjectUniqueUIDs(t *testing.T) {
	obj1 := NewGameObject("First")
	obj2 := NewGameObject("Second")
	obj3 := NewGameObject("Third")

	if obj1.UID == obj2.UID || obj2.UID == obj3.UID || obj1.UID == obj3.UID {
		t.Error("GameObjects should have unique UIDs")
	}
}

func TestGameObjectHasTag(t *testing.T) {
	obj := NewGameObject("Test")
	obj.Tags = []string{"furniture", "placeable"}

	if !obj.HasTag("furniture") {
		t.Error("HasTag should return true for existing tag")
	}

	if obj.HasTag("surface") {
		t.Error("HasTag should return false for non-existent tag")
	}

	obj2 := NewGameObject("Test2")
	if obj2.HasTag("anything") {
		t.Error("HasTag should return false when Tags is nil/empty")
	}
}

func TestGameObjectAddComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &BaseComponent{}

	obj.AddComponent(comp)

	if len(obj.components) != 1 {
		t.Errorf("Expected 1 component, got %d", len(obj.components))
	}

	if comp.gameObject != obj {
		t.Error("Component.gameObject should be set")
	}
}

func TestGameObjectGetComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &BaseComponent{}

	obj.AddComponent(comp)

	found := GetComponent[*BaseComponent](obj)
	if found != comp {
		t.Error("GetComponent failed to find component")
	}

	if GetComponent[*countingComponent](obj) != nil {
		t.Error("GetComponent should return nil for a missing type")
	}
}

func TestFindComponentByInterface(t *testing.T) {
	obj := NewGameObject("Test")
	obj.AddComponent(&BaseComponent{})
	obj.AddComponent(&namedComponent{})

	n := FindComponent[namer](obj)
	if n == nil || n.Name() != "named" {
		t.Error("FindComponent failed to find interface implementation")
	}
}

func TestGameObjectStartCalledOnce(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &countingComponent{}
	obj.AddComponent(comp)

	obj.Start()
	obj.Start()

	if comp.starts != 1 {
		t.Errorf("Expected Start once, got %d", comp.starts)
	}
}

func TestAddComponentAfterStart(t *testing.T) {
	obj := NewGameObject("Test")
	obj.Start()

	comp := &countingComponent{}
	obj.AddComponent(comp)

	if comp.starts != 1 {
		t.Errorf("Component added to a started object should start immediately, got %d starts", comp.starts)
	}
}

func TestInactiveGameObjectSkipsUpdate(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &countingComponent{}
	obj.AddComponent(comp)

	obj.Update(0.016)
	obj.Active = false
	obj.Update(0.016)

	if comp.updates != 1 {
		t.Errorf("Expected 1 update, got %d", comp.updates)
	}
}

func TestTransformEulerDegrees(t *testing.T) {
	tr := Transform{Rotation: rl.QuaternionFromAxisAngle(rl.Vector3{Y: 1}, 45*rl.Deg2rad)}
	e := tr.EulerDegrees()
	if d := e.Y - 45; d > 1e-3 || d < -1e-3 {
		t.Errorf("yaw = %v, want 45", e.Y)
	}
	if e.X > 1e-3 || e.X < -1e-3 || e.Z > 1e-3 || e.Z < -1e-3 {
		t.Errorf("pitch/roll = %v/%v, want 0", e.X, e.Z)
	}
}
