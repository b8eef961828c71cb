package acts

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var units = []string{
	"", "один", "два", "три", "чотири", "п'ять", "шість", "сім", "вісім", "дев'ять",
	"десять", "одинадцять", "дванадцять", "тринадцять", "чотирнадцять", "п'ятнадцять",
	"шістнадцять", "сімнадцять", "вісімнадцять", "дев'ятнадцять",
}

var tens = []string{
	"", "", "двадцять", "тридцять", "сорок", "п'ятдесят",
	"шістдесят", "сімдесят", "вісімдесят", "дев'яносто",
}

var hundreds = []string{
	"", "сто", "двісті", "триста", "чотириста", "п'ятсот",
	"шістсот", "сімсот", "вісімсот", "дев'ятсот",
}

// NumberWords returns the Ukrainian cardinal for n in masculine form.
func NumberWords(n int) string {
	if n == 0 {
		return "нуль"
	}

	if n < 0 {
		return "мінус " + NumberWords(-n)
	}

	parts := []string{}

	if t := n / 1000; t > 0 {
		parts = append(parts, feminine(NumberWords(t)), plural(t, "тисяча", "тисячі", "тисяч"))
		n %= 1000
	}

	if n > 0 {
		parts = append(parts, under1000(n))
	}

	return strings.Join(parts, " ")
}

// MoneyWords renders an amount as hryvnia words with two-digit kopiykas,
// e.g. 1234.50 -> "одна тисяча двісті тридцять чотири грн. 50 коп.".
func MoneyWords(d decimal.Decimal) string {
	kopiykas := Money(d).Mul(decimal.NewFromInt(100)).IntPart()
	hryvnias := kopiykas / 100
	kop := kopiykas % 100

	return fmt.Sprintf("%s грн. %02d коп.", feminine(NumberWords(int(hryvnias))), kop)
}

func under1000(n int) string {
	parts := []string{}

	if h := n / 100; h > 0 {
		parts = append(parts, hundreds[h])
		n %= 100
	}

	switch {
	case n >= 20:
		parts = append(parts, tens[n/10])
		if n%10 > 0 {
			parts = append(parts, units[n%10])
		}

	case n > 0:
		parts = append(parts, units[n])
	}

	return strings.Join(parts, " ")
}

// plural selects the grammatical form for a Ukrainian counted noun.
func plural(n int, one, few, many string) string {
	n = n % 100
	if n%10 == 1 && n != 11 {
		return one
	}

	if n%10 >= 2 && n%10 <= 4 && (n < 12 || n > 14) {
		return few
	}

	return many
}

// feminine rewrites standalone 'один'/'два' for feminine counted nouns
// (тисяча, гривня).
func feminine(s string) string {
	fields := strings.Fields(s)
	for i, f := range fields {
		switch f {
		case "один":
			fields[i] = "одна"
		case "два":
			fields[i] = "дві"
		}
	}

	return strings.Join(fields, " ")
}
