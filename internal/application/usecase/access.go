package usecase

import (
	"github.com/jhoicas/embutidos-web/internal/application/view"
	"github.com/jhoicas/embutidos-web/internal/domain"
	"github.com/jhoicas/embutidos-web/internal/domain/permission"
	"github.com/jhoicas/embutidos-web/internal/domain/session"
)

// denied resultado de una mutación sin permiso; no llega al backend.
func denied(action string) view.Result {
	return view.Result{Err: domain.ErrForbidden, Message: "No tienes permiso para " + action + "."}
}

// allowed devuelve el resultado de rechazo si la sesión no tiene el permiso.
func allowed(sess *session.Session, p permission.Permission, action string) (view.Result, bool) {
	if sess.Can(p) {
		return view.Result{}, true
	}
	return denied(action), false
}

// when agrega la tarea solo si la sesión tiene el permiso.
func when(tasks []view.Task, sess *session.Session, p permission.Permission, t view.Task) []view.Task {
	if sess.Can(p) {
		return append(tasks, t)
	}
	return tasks
}
