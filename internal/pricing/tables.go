package pricing

import "github.com/m04kA/SBN-BookingService/internal/domain"

// Tables тарифные таблицы, которые потребляет движок
type Tables struct {
	Rates     map[domain.ServiceType]float64 // €/м²
	Discounts map[domain.Frequency]float64   // проценты
	AddOns    map[string]float64             // фиксированная цена
}

// DefaultTables тарифы по умолчанию
func DefaultTables() Tables {
	return Tables{
		Rates: map[domain.ServiceType]float64{
			domain.ServiceBureau:     2.5,
			domain.ServiceCommerce:   3.0,
			domain.ServiceIndustriel: 4.0,
		},
		Discounts: map[domain.Frequency]float64{
			domain.FrequencyUnique:         0,
			domain.FrequencyHebdomadaire:   20,
			domain.FrequencyBihebdomadaire: 15,
			domain.FrequencyMensuel:        10,
		},
		AddOns: AddOnFees(domain.DefaultAddOns),
	}
}

// AddOnFees строит таблицу цен из каталога дополнительных услуг
func AddOnFees(addOns []domain.AddOn) map[string]float64 {
	fees := make(map[string]float64, len(addOns))
	for _, a := range addOns {
		fees[a.ID] = a.Fee
	}
	return fees
}
