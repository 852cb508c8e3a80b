package checkup

// Template suggests when a standard checkup is usually scheduled.
type Template struct {
	Type        Type
	Description string
	Week        int
}

// Templates lists the standard prenatal schedule by week of pregnancy.
var Templates = []Template{
	{
		Type:        TypeInitialVisit,
		Week:        6,
		Description: "Confirm the pregnancy and set up a prenatal file",
	},
	{
		Type:        TypeNTScan,
		Week:        11,
		Description: "Nuchal translucency ultrasound",
	},
	{
		Type:        TypeDownScreening,
		Week:        15,
		Description: "Down syndrome serum screening",
	},
	{
		Type:        TypeAnomalyScan,
		Week:        20,
		Description: "Detailed fetal anomaly ultrasound",
	},
	{
		Type:        TypeGlucoseTest,
		Week:        24,
		Description: "Gestational diabetes screening",
	},
}
