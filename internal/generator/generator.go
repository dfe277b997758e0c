package generator

import (
	"fmt"

	"courier_oms/internal/model"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
)

var (
	packageTypes = []string{
		string(model.PackageDocument), string(model.PackagePackage),
		string(model.PackageParcel), string(model.PackageCargo),
	}
	serviceTypes = []string{
		string(model.ServiceExpress), string(model.ServiceRegular), string(model.ServiceEconomy),
	}
)

// Generator создает случайные, но валидные тестовые данные.
type Generator struct {
	faker *gofakeit.Faker
}

// New создает генератор. Одинаковый seed дает одинаковую последовательность,
// seed 0 - случайную.
func New(seed int64) *Generator {
	return &Generator{faker: gofakeit.New(seed)}
}

// Draft создает заявку на заказ. Тариф и итог не заполняются,
// их рассчитывает сервер.
func (g *Generator) Draft() model.OrderDraft {
	f := g.faker

	draft := model.OrderDraft{
		SenderName:    f.Name(),
		SenderPhone:   f.Phone(),
		SenderEmail:   f.Email(),
		SenderAddress: g.address(),

		RecipientName:    f.Name(),
		RecipientPhone:   f.Phone(),
		RecipientEmail:   f.Email(),
		RecipientAddress: g.address(),

		PackageType: model.PackageType(f.RandomString(packageTypes)),
		Weight:      decimal.NewNullDecimal(decimal.NewFromFloat(f.Float64Range(0.1, 30)).Round(2)),
		Description: f.Sentence(4),

		ServiceType: model.ServiceType(f.RandomString(serviceTypes)),
		FromRegion:  g.region(),
		ToRegion:    g.region(),

		HasInsurance:       f.Bool(),
		HasSMSNotification: f.Bool(),
	}

	if f.Number(1, 10) <= 3 {
		draft.IsCOD = true
		draft.CODAmount = decimal.NewNullDecimal(decimal.NewFromInt(int64(f.Number(200, 20000))))
	}
	if f.Bool() {
		draft.DeclaredValue = decimal.NewNullDecimal(decimal.NewFromInt(int64(f.Number(100, 50000))))
	}

	return draft
}

// Customer создает данные клиента.
func (g *Generator) Customer() model.CustomerInput {
	f := g.faker
	addr := f.Address()

	return model.CustomerInput{
		FullName: f.Name(),
		Email:    f.Email(),
		Phone:    f.Phone(),
		Address:  addr.Street,
		City:     addr.City,
		Province: addr.State,
		ZipCode:  addr.Zip,
	}
}

// Agent создает активного курьера с табельным номером на основе seq.
func (g *Generator) Agent(seq int) model.AgentInput {
	f := g.faker

	return model.AgentInput{
		FullName:   f.Name(),
		Email:      f.Email(),
		Phone:      f.Phone(),
		EmployeeID: fmt.Sprintf("EMP-%05d", seq),
		Region:     string(g.region()),
	}
}

func (g *Generator) region() model.Region {
	return model.Regions[g.faker.Number(0, len(model.Regions)-1)]
}

// address - согласованный адрес одной строкой.
func (g *Generator) address() string {
	addr := g.faker.Address()
	return fmt.Sprintf("%s, %s, %s %s", addr.Street, addr.City, addr.State, addr.Zip)
}
