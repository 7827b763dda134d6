package uvprojx

// The structs mirror the subset of the µVision 5 project schema the
// converter reads. Optional nodes are pointers so that absence can be told
// apart from an empty value.

type xmlProject struct {
	Targets []xmlTarget `xml:"Targets>Target"`
}

type xmlTarget struct {
	TargetName   *string         `xml:"TargetName"`
	UAC6         *string         `xml:"uAC6"`
	TargetOption xmlTargetOption `xml:"TargetOption"`
	Groups       []xmlGroup      `xml:"Groups>Group"`
}

type xmlTargetOption struct {
	Common xmlCommonOption `xml:"TargetCommonOption"`
	ArmAds xmlArmAds       `xml:"TargetArmAds"`
}

type xmlCommonOption struct {
	Device          *string `xml:"Device"`
	OutputDirectory *string `xml:"OutputDirectory"`
}

type xmlArmAds struct {
	UAC6        *string  `xml:"uAC6"`
	UseArmClang *string  `xml:"UseArmClang"`
	Cads        xmlCads  `xml:"Cads"`
	Aads        xmlAads  `xml:"Aads"`
	LDads       xmlLDads `xml:"LDads"`
}

type xmlCads struct {
	Optim           *string            `xml:"Optim"`
	Optimization    *string            `xml:"Optimization"`
	VariousControls xmlVariousControls `xml:"VariousControls"`
}

type xmlAads struct {
	VariousControls xmlVariousControls `xml:"VariousControls"`
}

type xmlLDads struct {
	ScatterFile     *string            `xml:"ScatterFile"`
	VariousControls xmlVariousControls `xml:"VariousControls"`
}

type xmlVariousControls struct {
	MiscControls *string `xml:"MiscControls"`
	Define       *string `xml:"Define"`
	IncludePath  *string `xml:"IncludePath"`
}

type xmlGroup struct {
	GroupName string    `xml:"GroupName"`
	Files     []xmlFile `xml:"Files>File"`
}

type xmlFile struct {
	FilePath *string `xml:"FilePath"`
}

func text(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
