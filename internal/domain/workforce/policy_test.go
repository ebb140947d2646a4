package workforce_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/economit/backoffice/internal/domain/entity"
	"github.com/economit/backoffice/internal/domain/workforce"
)

func tareas(ids ...string) []*entity.Task {
	out := make([]*entity.Task, 0, len(ids))
	for _, id := range ids {
		out = append(out, &entity.Task{ID: id, AssignedToID: "emp-" + id})
	}
	return out
}

func TestVisibleTasks_AdminVeTodo(t *testing.T) {
	admin := &entity.User{ID: "a1", Role: entity.RoleCompanyAdmin}
	in := tareas("1", "2", "3")

	out := workforce.VisibleTasks(admin, in)
	assert.Equal(t, in, out)
}

func TestVisibleTasks_EmpleadoSoloLasSuyas(t *testing.T) {
	emp := &entity.User{ID: "emp-2", Role: entity.RoleEmployee}
	in := tareas("1", "2", "3")

	out := workforce.VisibleTasks(emp, in)
	assert.Len(t, out, 1)
	assert.Equal(t, "2", out[0].ID)
}

func TestVisibleTasks_PreservaElOrden(t *testing.T) {
	emp := &entity.User{ID: "x", Role: entity.RoleEmployee}
	in := []*entity.Task{
		{ID: "t1", AssignedToID: "x"},
		{ID: "t2", AssignedToID: "otro"},
		{ID: "t3", AssignedToID: "x"},
	}

	out := workforce.VisibleTasks(emp, in)
	assert.Equal(t, []string{"t1", "t3"}, []string{out[0].ID, out[1].ID})
}

func TestVisibleTasks_SinTareas(t *testing.T) {
	emp := &entity.User{ID: "x", Role: entity.RoleEmployee}
	assert.Empty(t, workforce.VisibleTasks(emp, nil))
}
