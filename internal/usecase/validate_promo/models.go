package validate_promo

// Response результат проверки промокода
type Response struct {
	Valid    bool
	Code     string
	Discount float64 // в процентах, 0 для невалидного кода
	Message  string
}
