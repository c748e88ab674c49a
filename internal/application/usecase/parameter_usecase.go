package usecase

import (
	"context"

	"github.com/jhoicas/embutidos-web/internal/application/dto"
	"github.com/jhoicas/embutidos-web/internal/application/ports"
	"github.com/jhoicas/embutidos-web/internal/application/view"
	"github.com/jhoicas/embutidos-web/internal/domain/entity"
	"github.com/jhoicas/embutidos-web/internal/domain/permission"
	"github.com/jhoicas/embutidos-web/internal/domain/session"
)

// ParameterPage parámetros de negocio.
type ParameterPage struct {
	State      view.State
	Parameters []entity.Parameter
}

// ParameterUseCase lista y edita parámetros (p. ej. límite de deudas).
type ParameterUseCase struct {
	api      ports.SalesService
	composer *view.Composer
}

func NewParameterUseCase(api ports.SalesService, composer *view.Composer) *ParameterUseCase {
	return &ParameterUseCase{api: api, composer: composer}
}

func (uc *ParameterUseCase) Load(ctx context.Context, sess *session.Session) ParameterPage {
	var page ParameterPage
	tasks := when(nil, sess, permission.VerParametros, view.Into("parametros", &page.Parameters, func(ctx context.Context) ([]entity.Parameter, error) {
		return uc.api.Parameters(ctx, sess.Token())
	}))
	page.State = uc.composer.Load(ctx, "Error al cargar los parámetros", tasks...)
	return page
}

// UpdateParameter cambia el valor de un parámetro.
func (uc *ParameterUseCase) UpdateParameter(ctx context.Context, sess *session.Session, id string, in dto.ParameterForm) (ParameterPage, view.Result) {
	if res, ok := allowed(sess, permission.ActualizarParametroID, "actualizar parámetros"); !ok {
		return ParameterPage{}, res
	}
	var page ParameterPage
	res := uc.composer.Submit(ctx, view.Mutation{
		Input: &in,
		Call:  func(ctx context.Context) error { return uc.api.UpdateParameter(ctx, sess.Token(), id, in.Payload()) },
		Refetch: func(ctx context.Context) view.State {
			page = uc.Load(ctx, sess)
			return page.State
		},
		Success:  "Parámetro actualizado exitosamente",
		Fallback: "Error al actualizar el parámetro",
	})
	return page, res
}
