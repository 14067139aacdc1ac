package domain

// ServiceType категория помещения, определяющая ставку за м²
type ServiceType string

const (
	ServiceBureau     ServiceType = "bureau"
	ServiceCommerce   ServiceType = "commerce"
	ServiceIndustriel ServiceType = "industriel"
)

// ServiceTypes все категории в порядке отображения
var ServiceTypes = []ServiceType{ServiceBureau, ServiceCommerce, ServiceIndustriel}

// IsValid returns true if the service type is a known category
func (s ServiceType) IsValid() bool {
	for _, st := range ServiceTypes {
		if st == s {
			return true
		}
	}
	return false
}

// Frequency частота уборки, определяющая скидку
type Frequency string

const (
	FrequencyUnique         Frequency = "unique"
	FrequencyHebdomadaire   Frequency = "hebdomadaire"
	FrequencyBihebdomadaire Frequency = "bihebdomadaire"
	FrequencyMensuel        Frequency = "mensuel"
)

// Frequencies все частоты в порядке отображения
var Frequencies = []Frequency{FrequencyUnique, FrequencyHebdomadaire, FrequencyBihebdomadaire, FrequencyMensuel}

// IsValid returns true if the frequency is known
func (f Frequency) IsValid() bool {
	for _, fr := range Frequencies {
		if fr == f {
			return true
		}
	}
	return false
}

// AddOn дополнительная услуга с фиксированной ценой
type AddOn struct {
	ID    string
	Label string
	Fee   float64
}

// DefaultAddOns каталог дополнительных услуг
var DefaultAddOns = []AddOn{
	{ID: "vitres", Label: "Nettoyage des vitres", Fee: 50},
	{ID: "sanitaires", Label: "Désinfection sanitaires renforcée", Fee: 30},
	{ID: "dechets", Label: "Gestion des déchets spéciaux", Fee: 40},
	{ID: "tapis", Label: "Shampoing tapis/moquettes", Fee: 60},
}

// Shift часть дня, объединяющая несколько слотов
type Shift string

const (
	ShiftMatin     Shift = "Matin"
	ShiftApresMidi Shift = "Après-midi"
	ShiftSoir      Shift = "Soir"
)

// TimeSlot слот времени уборки
type TimeSlot struct {
	Value string
	Label string
	Shift Shift
}

// TimeSlots фиксированный набор слотов
var TimeSlots = []TimeSlot{
	{Value: "06:00", Label: "6h00 - 8h00", Shift: ShiftMatin},
	{Value: "08:00", Label: "8h00 - 10h00", Shift: ShiftMatin},
	{Value: "10:00", Label: "10h00 - 12h00", Shift: ShiftMatin},
	{Value: "14:00", Label: "14h00 - 16h00", Shift: ShiftApresMidi},
	{Value: "16:00", Label: "16h00 - 18h00", Shift: ShiftApresMidi},
	{Value: "18:00", Label: "18h00 - 20h00", Shift: ShiftSoir},
	{Value: "20:00", Label: "20h00 - 22h00", Shift: ShiftSoir},
}

// FindTimeSlot ищет слот по значению ("08:00")
func FindTimeSlot(value string) (TimeSlot, bool) {
	for _, slot := range TimeSlots {
		if slot.Value == value {
			return slot, true
		}
	}
	return TimeSlot{}, false
}
