package i18n

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	t.Run("recognized values", func(t *testing.T) {
		assert.Equal(t, LangFR, Parse("FR"))
		assert.Equal(t, LangEN, Parse("EN"))
		assert.Equal(t, LangEN, Parse(" en "))
	})

	t.Run("anything else falls back to default", func(t *testing.T) {
		assert.Equal(t, Default, Parse("DE"))
		assert.Equal(t, Default, Parse(""))
		assert.Equal(t, Default, Parse("french"))
	})
}

func TestT(t *testing.T) {
	t.Run("transfer failure texts", func(t *testing.T) {
		assert.Equal(t,
			"Votre virement n'a pas été effectué, veuillez contacter votre banque",
			T(LangFR, "transferFailed"))
		assert.Equal(t,
			"Your transfer was not completed, please contact your bank",
			T(LangEN, "transferFailed"))
	})

	t.Run("unknown key comes back verbatim", func(t *testing.T) {
		assert.Equal(t, "noSuchKey", T(LangFR, "noSuchKey"))
	})

	t.Run("invalid language uses default table", func(t *testing.T) {
		assert.Equal(t, "Virement", T(Language("DE"), "transferCategory"))
	})
}

func TestFormatAmount(t *testing.T) {
	// XOF carries no minor unit, so whole amounts pass through unshifted
	assert.Contains(t, FormatAmount(500, "XOF"), "500")
	assert.NotContains(t, FormatAmount(500, "XOF"), "5.00")
	assert.NotEmpty(t, FormatAmount(50_000, "XOF"))
}

func TestFormatDate(t *testing.T) {
	date := time.Date(2026, time.January, 12, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "12 janvier 2026", FormatDate(date, LangFR))
	assert.Equal(t, "12 January 2026", FormatDate(date, LangEN))
}

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "fév", MonthLabel(time.February, LangFR))
	assert.Equal(t, "Feb", MonthLabel(time.February, LangEN))
}
