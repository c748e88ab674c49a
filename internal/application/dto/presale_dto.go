package dto

// PresaleForm alta de preventa.
type PresaleForm struct {
	ClienteID    string            `form:"clienteId" validate:"required" msg:"Seleccione un cliente."`
	FechaEntrega string            `form:"fechaEntrega" validate:"required,datetime=2006-01-02" msg:"Seleccione la fecha de entrega."`
	Notas        string            `form:"notas"`
	Productos    []PresaleLineForm `form:"productos" validate:"min=1,dive" msg:"Agregue al menos un producto."`
}

// PresaleLineForm producto pedido. El mínimo por producto es 10.
type PresaleLineForm struct {
	Producto string `form:"producto" validate:"required" msg:"Seleccione un producto."`
	Cantidad int    `form:"cantidad" validate:"gte=10" msg:"La cantidad mínima es 10."`
}

// Normalize descarta filas vacías.
func (f *PresaleForm) Normalize() {
	lines := f.Productos[:0]
	for _, l := range f.Productos {
		if trim(l.Producto) == "" && l.Cantidad == 0 {
			continue
		}
		lines = append(lines, l)
	}
	f.Productos = lines
}

// PresalePayload cuerpo de POST /preventas.
type PresalePayload struct {
	ClienteID    string               `json:"clienteId"`
	FechaEntrega string               `json:"fechaEntrega"`
	Productos    []PresaleLinePayload `json:"productos"`
	Notas        string               `json:"notas,omitempty"`
}

// PresaleLinePayload producto de la preventa.
type PresaleLinePayload struct {
	Producto string `json:"producto"`
	Cantidad int    `json:"cantidad"`
}

// Payload convierte el formulario ya validado.
func (f PresaleForm) Payload() PresalePayload {
	lines := make([]PresaleLinePayload, 0, len(f.Productos))
	for _, l := range f.Productos {
		lines = append(lines, PresaleLinePayload(l))
	}
	return PresalePayload{
		ClienteID:    f.ClienteID,
		FechaEntrega: f.FechaEntrega,
		Productos:    lines,
		Notas:        trim(f.Notas),
	}
}

// DeliveryForm confirmación o cancelación de la entrega de una preventa.
type DeliveryForm struct {
	PreventaID   string `form:"preventaId" validate:"required"`
	ClienteID    string `form:"clienteId" validate:"required"`
	FechaEntrega string `form:"fechaEntrega" validate:"required"`
	Confirmacion bool   `form:"confirmacion"`
}

// DeliveryPayload cuerpo de POST /preventas/confirmar-entrega.
type DeliveryPayload struct {
	ClienteID    string `json:"clienteId"`
	FechaEntrega string `json:"fechaEntrega"`
	Confirmacion bool   `json:"confirmacion"`
}

// Payload convierte el formulario ya validado.
func (f DeliveryForm) Payload() DeliveryPayload {
	return DeliveryPayload{ClienteID: f.ClienteID, FechaEntrega: f.FechaEntrega, Confirmacion: f.Confirmacion}
}
