package report

import "github.com/xuri/excelize/v2"

// Workbook palette, navy/teal consulting deck colors.
const (
	colorNavy      = "1B2A4A"
	colorDarkTeal  = "1A6B5C"
	colorTeal      = "2EC4B6"
	colorLightGrey = "F2F2F2"
	colorWhite     = "FFFFFF"
	colorGold      = "D4A853"
	colorRed       = "E74C3C"
	colorGreen     = "27AE60"
	colorBorder    = "CCCCCC"
)

const (
	currencyFmt = `₹#,##0`
	percentFmt  = `0.00"%"`
)

// styleSet holds the style IDs registered on one workbook. Excelize styles
// are flat (one ID per cell), so formats that overlap in the layout get a
// pre-combined entry here instead of being composed at write time.
type styleSet struct {
	title   int
	section int
	header  int

	cell        int
	cellAlt     int
	currency    int
	currencyAlt int
	percent     int
	percentAlt  int

	totalLabel    int
	totalCurrency int
	totalPercent  int
	profitPos     int
	profitNeg     int

	kpiLabel int
	kpiValue int

	usageHigh int
	usageWarm int

	bullet int
}

func newStyleSet(f *excelize.File) (*styleSet, error) {
	s := &styleSet{}
	var err error

	register := func(dst *int, style *excelize.Style) {
		if err != nil {
			return
		}
		*dst, err = f.NewStyle(style)
	}

	fill := func(color string) excelize.Fill {
		return excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}}
	}
	thinBottom := []excelize.Border{{Type: "bottom", Color: colorBorder, Style: 1}}
	curFmt := currencyFmt
	pctFmt := percentFmt

	register(&s.title, &excelize.Style{
		Font: &excelize.Font{Family: "Calibri", Bold: true, Color: colorNavy, Size: 16},
	})
	register(&s.section, &excelize.Style{
		Font: &excelize.Font{Family: "Calibri", Bold: true, Color: colorDarkTeal, Size: 13},
	})
	register(&s.header, &excelize.Style{
		Font:      &excelize.Font{Family: "Calibri", Bold: true, Color: colorWhite, Size: 11},
		Fill:      fill(colorNavy),
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})

	register(&s.cell, &excelize.Style{Border: thinBottom})
	register(&s.cellAlt, &excelize.Style{Border: thinBottom, Fill: fill(colorLightGrey)})
	register(&s.currency, &excelize.Style{Border: thinBottom, CustomNumFmt: &curFmt})
	register(&s.currencyAlt, &excelize.Style{Border: thinBottom, Fill: fill(colorLightGrey), CustomNumFmt: &curFmt})
	register(&s.percent, &excelize.Style{Border: thinBottom, CustomNumFmt: &pctFmt})
	register(&s.percentAlt, &excelize.Style{Border: thinBottom, Fill: fill(colorLightGrey), CustomNumFmt: &pctFmt})

	register(&s.totalLabel, &excelize.Style{
		Font: &excelize.Font{Family: "Calibri", Bold: true, Size: 11},
	})
	register(&s.totalCurrency, &excelize.Style{
		Font:         &excelize.Font{Family: "Calibri", Bold: true, Size: 11},
		CustomNumFmt: &curFmt,
	})
	register(&s.totalPercent, &excelize.Style{
		Font:         &excelize.Font{Family: "Calibri", Bold: true, Size: 11},
		CustomNumFmt: &pctFmt,
	})
	register(&s.profitPos, &excelize.Style{
		Font:         &excelize.Font{Family: "Calibri", Bold: true, Size: 12, Color: colorGreen},
		CustomNumFmt: &curFmt,
	})
	register(&s.profitNeg, &excelize.Style{
		Font:         &excelize.Font{Family: "Calibri", Bold: true, Size: 12, Color: colorRed},
		CustomNumFmt: &curFmt,
	})

	register(&s.kpiLabel, &excelize.Style{
		Font:      &excelize.Font{Family: "Calibri", Bold: true, Color: colorWhite, Size: 10},
		Fill:      fill(colorNavy),
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	register(&s.kpiValue, &excelize.Style{
		Font:      &excelize.Font{Family: "Calibri", Bold: true, Size: 14, Color: colorDarkTeal},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})

	register(&s.usageHigh, &excelize.Style{
		Font:   &excelize.Font{Family: "Calibri", Bold: true, Color: colorRed},
		Border: thinBottom,
	})
	register(&s.usageWarm, &excelize.Style{
		Font:   &excelize.Font{Family: "Calibri", Color: colorGold},
		Border: thinBottom,
	})

	register(&s.bullet, &excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})

	if err != nil {
		return nil, err
	}
	return s, nil
}
