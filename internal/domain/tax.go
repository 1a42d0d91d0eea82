package domain

// TaxRecord — справочная запись о налоговой ставке товара.
// Поставляется внешним справочником GST и никогда не мутируется витриной.
type TaxRecord struct {
	// ID совпадает с идентификатором товара в каталоге.
	ID       string
	Title    string
	Brand    string
	Category string
	// ProductCost — базовая стоимость товара, от которой считается налог.
	ProductCost float64
	// GSTPercentage — ставка налога в процентах (0–100).
	GSTPercentage float64
}

// GSTAmount возвращает производную сумму налога: cost × percentage / 100.
func (t TaxRecord) GSTAmount() float64 {
	return t.ProductCost * t.GSTPercentage / 100
}

// SplitGST делит налог на равные центральную (CGST) и региональную (SGST) части.
// Политика равного деления: налог сам по себе неравномерно не расщепляется.
func (t TaxRecord) SplitGST() (cgst, sgst float64) {
	half := t.GSTAmount() / 2
	return half, half
}

// ValidateInvariants проверяет границы справочной записи.
func (t *TaxRecord) ValidateInvariants() []error {
	var errs []error

	if t.ID == "" {
		errs = append(errs, ErrProductIDRequired)
	}
	if t.ProductCost < 0 {
		errs = append(errs, ErrPriceNegative)
	}
	if t.GSTPercentage < 0 || t.GSTPercentage > 100 {
		errs = append(errs, ErrGSTPercentageInvalid)
	}

	return errs
}

// FindTaxRecord выполняет поиск записи по идентификатору товара.
// Отсутствие записи — валидное состояние: счёт-фактуру выпустить нельзя.
func FindTaxRecord(records []TaxRecord, productID string) (TaxRecord, bool) {
	for _, record := range records {
		if record.ID == productID {
			return record, true
		}
	}
	return TaxRecord{}, false
}
