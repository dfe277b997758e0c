package validator

import (
	"errors"
	"testing"

	"courier_oms/internal/model"

	"github.com/stretchr/testify/assert"
)

func validDraft() model.OrderDraft {
	return model.OrderDraft{
		SenderName:       "Juan Dela Cruz",
		SenderAddress:    "123 Rizal Ave, Manila",
		RecipientName:    "Maria Santos",
		RecipientAddress: "45 Osmena Blvd, Cebu City",
		PackageType:      model.PackageParcel,
		ServiceType:      model.ServiceRegular,
		FromRegion:       model.RegionNCR,
		ToRegion:         model.RegionVisayas,
	}
}

func TestValidateStruct_ValidDraft(t *testing.T) {
	draft := validDraft()
	assert.NoError(t, ValidateStruct(&draft))
}

func TestValidateStruct_FieldErrors(t *testing.T) {
	draft := validDraft()
	draft.SenderName = ""
	draft.ServiceType = "overnight"
	draft.ToRegion = "LUZON"

	err := ValidateStruct(&draft)

	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
	fields := map[string]string{}
	for _, f := range verr.Fields {
		fields[f.Field] = f.Message
	}
	assert.Len(t, fields, 3)
	assert.Contains(t, fields, "senderName")
	assert.Contains(t, fields, "serviceType")
	assert.Equal(t, "неизвестная зона доставки", fields["toRegion"])
}

func TestValidateStruct_PatchSkipsMissingFields(t *testing.T) {
	assert.NoError(t, ValidateStruct(&model.OrderPatch{}))

	status := model.OrderStatus("lost")
	err := ValidateStruct(&model.OrderPatch{Status: &status})
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
	assert.Equal(t, "status", verr.Fields[0].Field)

	empty := ""
	err = ValidateStruct(&model.OrderPatch{SenderName: &empty})
	assert.Error(t, err)

	// Пустая строка снимает назначение агента
	assert.NoError(t, ValidateStruct(&model.OrderPatch{AssignedAgentID: &empty}))
}

func TestValidateStruct_AgentRequiresPhoneAndEmployeeID(t *testing.T) {
	err := ValidateStruct(&model.AgentInput{FullName: "Pedro", Region: "NCR"})
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Fields, 2)
}
