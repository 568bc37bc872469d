package systems

import (
	"testing"

	"github.com/decker502/horizon/pkg/components"
	"github.com/decker502/horizon/pkg/ecs"
	"github.com/decker502/horizon/pkg/entities"
)

func newTestButton(em *ecs.EntityManager, onClick func()) *components.ButtonComponent {
	id := entities.NewButton(em, 100, 50, 96, 36, "Reset", 14, onClick)
	button, _ := ecs.GetComponent[*components.ButtonComponent](em, id)
	return button
}

// halve 设备像素比为 2 时的坐标换算
func halve(x, y int) (float64, float64) {
	return float64(x) / 2, float64(y) / 2
}

func TestButtonSystem_ClickOnRelease(t *testing.T) {
	em := ecs.NewEntityManager()
	clicks := 0
	button := newTestButton(em, func() { clicks++ })

	pointer := &fakePointer{}
	system := NewButtonSystem(em, pointer, halve)

	// 按下：只改变状态
	pointer.press(240, 130)
	system.Update(1.0 / 60)
	if button.State != components.UIClicked {
		t.Errorf("Expected UIClicked, got %v", button.State)
	}
	if clicks != 0 {
		t.Errorf("Expected no click on press, got %d", clicks)
	}

	// 松开：触发回调
	pointer.release(240, 130)
	system.Update(1.0 / 60)
	if clicks != 1 {
		t.Errorf("Expected 1 click, got %d", clicks)
	}
	if button.State != components.UIHovered {
		t.Errorf("Expected UIHovered after release, got %v", button.State)
	}
}

func TestButtonSystem_ReleaseOutside(t *testing.T) {
	em := ecs.NewEntityManager()
	clicks := 0
	button := newTestButton(em, func() { clicks++ })

	pointer := &fakePointer{}
	system := NewButtonSystem(em, pointer, halve)

	pointer.release(10, 10)
	system.Update(1.0 / 60)
	if clicks != 0 {
		t.Errorf("Expected no click outside the button, got %d", clicks)
	}
	if button.State != components.UINormal {
		t.Errorf("Expected UINormal, got %v", button.State)
	}
}

func TestButtonSystem_Hover(t *testing.T) {
	em := ecs.NewEntityManager()
	button := newTestButton(em, nil)

	pointer := &fakePointer{}
	system := NewButtonSystem(em, pointer, halve)

	pointer.idle(300, 140)
	system.Update(1.0 / 60)
	if button.State != components.UIHovered {
		t.Errorf("Expected UIHovered, got %v", button.State)
	}

	// 没有回调的按钮松开时不会 panic
	pointer.release(300, 140)
	system.Update(1.0 / 60)
}

func TestButtonSystem_Disabled(t *testing.T) {
	em := ecs.NewEntityManager()
	clicks := 0
	button := newTestButton(em, func() { clicks++ })
	button.Enabled = false

	pointer := &fakePointer{}
	system := NewButtonSystem(em, pointer, halve)

	pointer.release(240, 130)
	system.Update(1.0 / 60)
	if clicks != 0 {
		t.Errorf("Disabled button should not be clicked")
	}
	if button.State != components.UIDisabled {
		t.Errorf("Expected UIDisabled, got %v", button.State)
	}
}
