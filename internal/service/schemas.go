package service

import (
	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/form"
	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/validation"
)

// Per-entity form schemas: the validator map, required-field sets and
// confirmation labels each drawer is parameterized with. Address and
// remarks are never required; identifiers are required only for update
// and travel as the record ID, not as draft fields.

var createUpdate = []form.Action{form.ActionCreate, form.ActionUpdate}

func customerSchema() *form.Schema {
	return &form.Schema{
		Entity: "customers",
		Fields: []form.Field{
			{Name: "name", Label: "Nombre", Rules: []validation.Rule{validation.Required, validation.OnlyLetters}, RequiredOn: createUpdate},
			{Name: "email", Label: "Correo electrónico", Rules: []validation.Rule{validation.Required, validation.ValidEmail}, RequiredOn: createUpdate},
			{Name: "nif", Label: "NIF", Rules: []validation.Rule{validation.Required, validation.NoSpaces}, RequiredOn: createUpdate},
			{Name: "phoneNumber", Label: "Teléfono", Rules: []validation.Rule{validation.ValidPhone}},
			{Name: "address", Label: "Dirección"},
			{Name: "remarks", Label: "Observaciones"},
		},
	}
}

func providerSchema() *form.Schema {
	return &form.Schema{
		Entity: "maintenance-providers",
		Fields: []form.Field{
			{Name: "name", Label: "Nombre", Rules: []validation.Rule{validation.Required}, RequiredOn: createUpdate},
			{Name: "email", Label: "Correo electrónico", Rules: []validation.Rule{validation.Required, validation.ValidEmail}, RequiredOn: createUpdate},
			{Name: "nif", Label: "NIF", Rules: []validation.Rule{validation.Required, validation.NoSpaces}, RequiredOn: createUpdate},
			{Name: "phoneNumber", Label: "Teléfono", Rules: []validation.Rule{validation.ValidPhone}},
			{Name: "address", Label: "Dirección"},
		},
	}
}

func equipmentSchema() *form.Schema {
	return &form.Schema{
		Entity: "equipment",
		Fields: []form.Field{
			{Name: "name", Label: "Nombre", Rules: []validation.Rule{validation.Required}, RequiredOn: createUpdate},
			{Name: "brand", Label: "Marca"},
			{Name: "model", Label: "Modelo"},
			{Name: "serialNumber", Label: "Número de serie", Rules: []validation.Rule{validation.Optional(validation.NoSpaces)}},
			{Name: "categoryId", Label: "Categoría", Rules: []validation.Rule{validation.Required}, RequiredOn: createUpdate},
			{Name: "customerEmail", Label: "Cliente", Rules: []validation.Rule{validation.Optional(validation.ValidEmail)}},
			{Name: "location", Label: "Ubicación"},
			{Name: "remarks", Label: "Observaciones"},
		},
	}
}

func categorySchema() *form.Schema {
	return &form.Schema{
		Entity: "equipment-categories",
		Fields: []form.Field{
			{Name: "name", Label: "Nombre", Rules: []validation.Rule{validation.Required}, RequiredOn: createUpdate},
			{Name: "description", Label: "Descripción"},
		},
	}
}

func maintenanceTypeSchema() *form.Schema {
	return &form.Schema{
		Entity: "maintenance-types",
		Fields: []form.Field{
			{Name: "name", Label: "Nombre", Rules: []validation.Rule{validation.Required}, RequiredOn: createUpdate},
			{Name: "description", Label: "Descripción"},
		},
	}
}

func catalogueSchema() *form.Schema {
	return &form.Schema{
		Entity: "catalogues",
		Fields: []form.Field{
			{Name: "name", Label: "Nombre", Rules: []validation.Rule{validation.Required}, RequiredOn: createUpdate},
			{Name: "description", Label: "Descripción"},
		},
	}
}

func productSchema() *form.Schema {
	return &form.Schema{
		Entity: "products",
		Fields: []form.Field{
			{Name: "name", Label: "Nombre", Rules: []validation.Rule{validation.Required}, RequiredOn: createUpdate},
			{Name: "description", Label: "Descripción"},
			{Name: "catalogueId", Label: "Catálogo", Rules: []validation.Rule{validation.Required}, RequiredOn: createUpdate},
			{Name: "unitOfMeasurementId", Label: "Unidad de medida", Rules: []validation.Rule{validation.Required}, RequiredOn: createUpdate},
			{Name: "warehouseTypeId", Label: "Tipo de almacén"},
			{Name: "stock", Label: "Existencias", Rules: []validation.Rule{validation.RequiredNumber}, RequiredOn: createUpdate},
			{Name: "price", Label: "Precio", Rules: []validation.Rule{validation.Optional(validation.RequiredNumber)}},
		},
	}
}

func maintenanceSchema() *form.Schema {
	return &form.Schema{
		Entity: "maintenance",
		Fields: []form.Field{
			{Name: "equipmentId", Label: "Equipo", Rules: []validation.Rule{validation.Required}, RequiredOn: createUpdate},
			{Name: "maintenanceTypeId", Label: "Tipo de mantenimiento", Rules: []validation.Rule{validation.Required}, RequiredOn: createUpdate},
			{Name: "responsibleId", Label: "Responsable", Rules: []validation.Rule{validation.Required}, RequiredOn: createUpdate},
			{Name: "priority", Label: "Prioridad", Rules: []validation.Rule{validation.Required}, RequiredOn: createUpdate},
			{Name: "description", Label: "Descripción"},
			{Name: "frequencyType", Label: "Frecuencia"},
			{Name: "frequencyValue", Label: "Valor de frecuencia", Rules: []validation.Rule{validation.Optional(validation.RequiredNumber)}},
			{Name: "nextMaintenanceDate", Label: "Próximo mantenimiento", Rules: []validation.Rule{validation.Optional(validation.ValidateDatePicker)}},
		},
	}
}

func scheduledMaintenanceSchema() *form.Schema {
	return &form.Schema{
		Entity: "scheduled-maintenance",
		Fields: []form.Field{
			{Name: "frequencyType", Label: "Frecuencia", Rules: []validation.Rule{validation.Required}, RequiredOn: []form.Action{form.ActionUpdate}},
			{Name: "frequencyValue", Label: "Valor de frecuencia", Rules: []validation.Rule{validation.RequiredNumber}, RequiredOn: []form.Action{form.ActionUpdate}},
			{Name: "nextMaintenanceDate", Label: "Próximo mantenimiento", Rules: []validation.Rule{validation.ValidateDatePicker}, RequiredOn: []form.Action{form.ActionUpdate}},
		},
	}
}
