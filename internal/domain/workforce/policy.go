package workforce

import "github.com/economit/backoffice/internal/domain/entity"

// VisibleTasks aplica la política de visibilidad de tareas según el rol del
// actor: un COMPANY_ADMIN ve todas las tareas de su empresa; un EMPLOYEE solo
// las asignadas a él. Es una función pura sobre (actor, tareas de la empresa)
// y preserva el orden de entrada; la política no es parametrizable por el
// llamador.
func VisibleTasks(actor *entity.User, tasks []*entity.Task) []*entity.Task {
	if actor.Role == entity.RoleCompanyAdmin {
		return tasks
	}
	visible := make([]*entity.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.AssignedToID == actor.ID {
			visible = append(visible, t)
		}
	}
	return visible
}
