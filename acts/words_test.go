package acts

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNumberWords(t *testing.T) {
	tests := []struct {
		value    int
		expected string
	}{
		{0, "нуль"},
		{1, "один"},
		{2, "два"},
		{11, "одинадцять"},
		{12, "дванадцять"},
		{21, "двадцять один"},
		{40, "сорок"},
		{100, "сто"},
		{234, "двісті тридцять чотири"},
		{1000, "одна тисяча"},
		{2000, "дві тисячі"},
		{5000, "п'ять тисяч"},
		{21000, "двадцять одна тисяча"},
		{1234, "одна тисяча двісті тридцять чотири"},
		{100500, "сто тисяч п'ятсот"},
	}

	for _, test := range tests {
		if v := NumberWords(test.value); v != test.expected {
			t.Errorf("Incorrect words for %d - expected:'%v', got:'%v'", test.value, test.expected, v)
		}
	}
}

func TestMoneyWords(t *testing.T) {
	tests := []struct {
		value    string
		expected string
	}{
		{"0", "нуль грн. 00 коп."},
		{"1", "одна грн. 00 коп."},
		{"2.50", "дві грн. 50 коп."},
		{"22.05", "двадцять дві грн. 05 коп."},
		{"1234.56", "одна тисяча двісті тридцять чотири грн. 56 коп."},
		{"5000.07", "п'ять тисяч грн. 07 коп."},
	}

	for _, test := range tests {
		d, _ := decimal.NewFromString(test.value)
		if v := MoneyWords(d); v != test.expected {
			t.Errorf("Incorrect words for %s - expected:'%v', got:'%v'", test.value, test.expected, v)
		}
	}
}

func TestPluralForms(t *testing.T) {
	tests := []struct {
		value    int
		expected string
	}{
		{1, "тисяча"},
		{2, "тисячі"},
		{4, "тисячі"},
		{5, "тисяч"},
		{11, "тисяч"},
		{12, "тисяч"},
		{14, "тисяч"},
		{21, "тисяча"},
		{22, "тисячі"},
		{111, "тисяч"},
	}

	for _, test := range tests {
		if v := plural(test.value, "тисяча", "тисячі", "тисяч"); v != test.expected {
			t.Errorf("Incorrect plural for %d - expected:'%v', got:'%v'", test.value, test.expected, v)
		}
	}
}
