package library

// Seed populates a library with example entries for common medical device
// standards. Used when no persisted index exists yet.
func Seed(l *Library) {
	l.AddStandard(&Standard{
		ID:          "IEC_60601-1",
		Title:       "Medical electrical equipment – Part 1: General requirements for basic safety and essential performance",
		ShortTitle:  "IEC 60601-1",
		Filename:    "IEC_60601-1.pdf",
		Description: "General safety standard for medical electrical equipment. Covers electrical safety, mechanical safety, radiation safety, and risk management requirements for all medical devices that are electrically powered.",
		Scope:       "Applies to basic safety and essential performance of medical electrical equipment (ME equipment) and medical electrical systems (ME systems).",
		KeyTopics: []string{
			"electrical safety",
			"patient leakage current",
			"applied parts",
			"Type B", "Type BF", "Type CF",
			"means of protection",
			"creepage distance",
			"air clearance",
			"protective earth",
			"single fault condition",
			"normal condition",
			"risk management",
			"essential performance",
			"basic safety",
			"enclosure",
			"temperature limits",
			"mechanical hazards",
			"biocompatibility",
			"cleaning and sterilization",
			"electromagnetic compatibility",
			"programmable electrical medical systems",
			"PEMS",
			"software",
			"usability",
			"alarms",
			"marking and labeling",
		},
		Sections: []Section{
			{"1", "Scope, object and related standards"},
			{"3", "Terms and definitions"},
			{"4", "General requirements (risk management, essential performance)"},
			{"5", "General requirements for testing"},
			{"6", "Classification of ME equipment and ME systems"},
			{"7", "Identification, marking and documents"},
			{"8", "Protection against electrical hazards - leakage currents, dielectric strength, creepage/clearance"},
			{"9", "Protection against mechanical hazards"},
			{"10", "Protection against unwanted and excessive radiation hazards"},
			{"11", "Protection against excessive temperatures and other hazards"},
			{"12", "Accuracy of controls and instruments and protection against hazardous outputs"},
			{"13", "Hazardous situations and fault conditions"},
			{"14", "Programmable electrical medical systems (PEMS)"},
			{"15", "Construction of ME equipment"},
			{"16", "ME systems"},
			{"17", "Electromagnetic compatibility"},
		},
		Annexes: []Annex{
			{"Annex A", "General requirements, tests and guidance for alarm systems in ME equipment", true, []string{"12"}},
			{"Annex B", "General requirements, tests and guidance for ME systems", true, []string{"16"}},
			{"Annex F", "Test methods for leakage currents and patient auxiliary currents", true, []string{"8.7"}},
			{"Annex H", "Rationale for PEMS requirements - software safety guidance", false, []string{"14"}},
			{"Annex J", "Rationale for electrical safety requirements", false, []string{"8"}},
		},
		KeyTerms: []string{
			"APPLIED PART",
			"BASIC SAFETY",
			"ESSENTIAL PERFORMANCE",
			"LEAKAGE CURRENT",
			"PATIENT LEAKAGE CURRENT",
			"TOUCH CURRENT",
			"EARTH LEAKAGE CURRENT",
			"MEANS OF OPERATOR PROTECTION",
			"MEANS OF PATIENT PROTECTION",
			"SINGLE FAULT CONDITION",
			"NORMAL CONDITION",
			"TYPE B APPLIED PART",
			"TYPE BF APPLIED PART",
			"TYPE CF APPLIED PART",
			"PEMS",
			"ME EQUIPMENT",
			"ME SYSTEM",
		},
		KeyTables: []Exhibit{
			{"Table 1", "Classification of APPLIED PARTS - Type B, BF, CF symbols and descriptions", "6.3", []string{"8.7", "8.5"}},
			{"Table 3", "Allowable values of PATIENT LEAKAGE CURRENT and PATIENT AUXILIARY CURRENT - NC and SFC limits", "8.7.3", []string{"8.7.4", "Annex F"}},
			{"Table 4", "Allowable values of TOUCH CURRENT and EARTH LEAKAGE CURRENT", "8.7.3", []string{"Annex F"}},
			{"Table 6", "Creepage distances and air clearances - MOOP values", "8.9", []string{"8.8"}},
			{"Table 10", "Maximum temperatures of applied parts and surfaces", "11.1", nil},
		},
		KeyFigures: []Exhibit{
			{"Figure 1", "Relationship of standards in the IEC 60601 series", "1", nil},
			{"Figure 3", "Classification decision tree for applied parts", "6.3", []string{"8.7"}},
			{"Figure F.1", "Test circuit for measurement of PATIENT LEAKAGE CURRENT - Type B applied part", "Annex F", []string{"8.7.3", "8.7.4"}},
			{"Figure F.2", "Test circuit for measurement of PATIENT LEAKAGE CURRENT - Type BF applied part", "Annex F", []string{"8.7.3", "8.7.4"}},
			{"Figure H.1", "Overview of PEMS development process", "Annex H", []string{"14"}},
		},
		RelatedStandards: []RelatedStandard{
			{"ISO_14971", "normative_reference", "Risk management - required for clause 4 compliance"},
			{"IEC_62304", "gap_coverage", "Software lifecycle - referenced by clause 14 (PEMS) for detailed software requirements"},
			{"IEC_60601-1-2", "collateral_standard", "EMC requirements - detailed electromagnetic compatibility requirements for clause 17"},
			{"IEC_60601-1-6", "collateral_standard", "Usability - detailed usability engineering requirements"},
			{"IEC_60601-1-8", "collateral_standard", "Alarm systems - detailed requirements supplementing Annex A"},
		},
		Organization: "IEC",
		Year:         "2005+AMD1:2012",
		Pages:        500,
	})

	l.AddStandard(&Standard{
		ID:          "ISO_14708-1",
		Title:       "Implants for surgery — Active implantable medical devices — Part 1: General requirements for safety, marking and for information to be provided by the manufacturer",
		ShortTitle:  "ISO 14708-1",
		Filename:    "ISO_14708-1.pdf",
		Description: "Specific requirements for active implantable medical devices (AIMDs) such as pacemakers, defibrillators, neurostimulators, and implantable drug pumps. Supplements IEC 60601-1 with implant-specific requirements.",
		Scope:       "Applies to active implantable medical devices intended to be totally or partially introduced into the human body.",
		KeyTopics: []string{
			"active implantable medical device",
			"AIMD",
			"pacemaker",
			"defibrillator",
			"ICD",
			"neurostimulator",
			"implantable pump",
			"cochlear implant",
			"implant safety",
			"biocompatibility",
			"sterility",
			"packaging",
			"shelf life",
			"implant longevity",
			"battery life",
			"hermeticity",
			"MRI safety",
			"electromagnetic immunity",
			"wireless telemetry",
			"patient programmer",
			"clinician programmer",
		},
		Sections: []Section{
			{"1", "Scope"},
			{"3", "Terms and definitions"},
			{"4", "General requirements"},
			{"5", "Protection against electrical hazards"},
			{"6", "Protection against mechanical hazards"},
			{"7", "Protection against radiation hazards"},
			{"8", "Protection against excessive temperatures"},
			{"9", "Protection against hazards from energy and substance delivery"},
			{"10", "Environmental conditions"},
			{"11", "Biocompatibility"},
			{"12", "Sterility"},
			{"13", "Instructions for use and labeling"},
		},
		Annexes: []Annex{
			{"Annex A", "Rationale for requirements", false, []string{"general"}},
			{"Annex B", "Test methods for hermeticity", true, []string{"6"}},
		},
		KeyTerms: []string{
			"ACTIVE IMPLANTABLE MEDICAL DEVICE",
			"AIMD",
			"IMPLANTABLE PART",
			"NON-IMPLANTABLE PART",
			"PROGRAMMER",
			"THERAPEUTIC OUTPUT",
		},
		KeyTables: []Exhibit{
			{"Table 1", "Environmental conditions for storage and transport", "10", nil},
		},
		KeyFigures: []Exhibit{
			{"Figure 1", "Example AIMD system showing implantable and non-implantable parts", "3", []string{"4", "5"}},
		},
		RelatedStandards: []RelatedStandard{
			{"IEC_60601-1", "parent_standard", "General safety requirements - ISO 14708-1 modifies and supplements 60601-1 for implants"},
			{"ISO_14971", "normative_reference", "Risk management process"},
			{"ISO_10993-1", "normative_reference", "Biocompatibility evaluation - required for clause 11"},
			{"IEC_62304", "normative_reference", "Software lifecycle for AIMD software"},
		},
		Organization: "ISO",
		Year:         "2014",
		Pages:        100,
	})

	l.AddStandard(&Standard{
		ID:          "ISO_14971",
		Title:       "Medical devices — Application of risk management to medical devices",
		ShortTitle:  "ISO 14971",
		Filename:    "ISO_14971.pdf",
		Description: "The fundamental risk management standard for medical devices. Defines the process for identifying hazards, estimating and evaluating risks, controlling risks, and monitoring effectiveness.",
		Scope:       "Applies to all stages of the medical device lifecycle. Applicable to any medical device.",
		KeyTopics: []string{
			"risk management",
			"risk analysis",
			"risk evaluation",
			"risk control",
			"hazard identification",
			"harm",
			"severity",
			"probability",
			"risk estimation",
			"risk acceptability",
			"ALARP",
			"benefit-risk",
			"residual risk",
			"risk management file",
			"risk management plan",
			"risk management report",
			"foreseeable misuse",
			"intended use",
			"reasonably foreseeable misuse",
			"FMEA",
			"fault tree",
			"hazard analysis",
		},
		Sections: []Section{
			{"1", "Scope"},
			{"3", "Terms and definitions - 26 defined terms including harm, hazard, risk, severity"},
			{"4", "General requirements for risk management - process, plan, file, competence"},
			{"5", "Risk analysis - intended use, hazard identification, risk estimation"},
			{"6", "Risk evaluation - criteria for risk acceptability"},
			{"7", "Risk control - option analysis, implementation, residual risk, benefit-risk"},
			{"8", "Evaluation of overall residual risk"},
			{"9", "Risk management review"},
			{"10", "Production and post-production activities"},
		},
		Annexes: []Annex{
			{"Annex A", "Rationale for requirements - explains reasoning behind each clause", false, []string{"4", "5", "6", "7", "8", "9", "10"}},
			{"Annex B", "Risk management process overview - flowcharts and process description", false, []string{"4", "general"}},
			{"Annex C", "Questions for identifying characteristics that could impact safety - hazard identification prompts", false, []string{"5"}},
		},
		KeyTerms: []string{
			"HARM",
			"HAZARD",
			"HAZARDOUS SITUATION",
			"RISK",
			"SEVERITY",
			"PROBABILITY OF OCCURRENCE",
			"RISK ANALYSIS",
			"RISK ASSESSMENT",
			"RISK CONTROL",
			"RISK ESTIMATION",
			"RISK EVALUATION",
			"RISK MANAGEMENT",
			"RISK MANAGEMENT FILE",
			"RESIDUAL RISK",
			"BENEFIT-RISK ANALYSIS",
			"INTENDED USE",
			"REASONABLY FORESEEABLE MISUSE",
		},
		KeyFigures: []Exhibit{
			{"Figure 1", "Schematic representation of the risk management process", "4", []string{"5", "6", "7"}},
			{"Figure B.1", "Risk management process flowchart - complete overview", "Annex B", []string{"4"}},
			{"Figure B.2", "Risk analysis process flowchart", "Annex B", []string{"5"}},
			{"Figure B.3", "Risk control process flowchart", "Annex B", []string{"7"}},
		},
		RelatedStandards: []RelatedStandard{
			{"IEC_60601-1", "overlapping", "Medical electrical equipment - requires ISO 14971 compliance, applies risk to electrical hazards"},
			{"IEC_62304", "overlapping", "Medical device software - requires ISO 14971 for software risk management and safety classification"},
			{"ISO_13485", "normative_reference", "Quality management systems - requires risk-based approach, references ISO 14971"},
			{"ISO_TR_24971", "informative_reference", "Guidance on application - technical report with detailed guidance on applying ISO 14971"},
		},
		Organization: "ISO",
		Year:         "2019",
		Pages:        40,
	})

	l.AddStandard(&Standard{
		ID:          "IEC_62304",
		Title:       "Medical device software – Software life cycle processes",
		ShortTitle:  "IEC 62304",
		Filename:    "IEC_62304.pdf",
		Description: "Software lifecycle standard for medical device software. Defines development, maintenance, risk management, configuration management, and problem resolution processes based on software safety classification.",
		Scope:       "Applies to development and maintenance of medical device software. Covers software as a medical device (SaMD) and software in a medical device.",
		KeyTopics: []string{
			"software lifecycle",
			"software development",
			"software safety classification",
			"Class A", "Class B", "Class C",
			"software requirements",
			"software architecture",
			"software design",
			"software unit",
			"software integration",
			"software testing",
			"software verification",
			"software validation",
			"software configuration management",
			"software problem resolution",
			"software maintenance",
			"SOUP",
			"software of unknown provenance",
			"off-the-shelf software",
			"OTS",
			"traceability",
			"software anomaly",
			"regression testing",
		},
		Sections: []Section{
			{"1", "Scope"},
			{"3", "Terms and definitions"},
			{"4", "General requirements - quality management, risk management, software safety classification"},
			{"5", "Software development process - planning, requirements, architecture, design, unit implementation, integration, testing"},
			{"6", "Software maintenance process"},
			{"7", "Software risk management process - hazard analysis, risk control, verification"},
			{"8", "Software configuration management process"},
			{"9", "Software problem resolution process"},
		},
		Annexes: []Annex{
			{"Annex A", "Rationale for requirements", false, []string{"general"}},
			{"Annex B", "Guidance on provisions of this standard - detailed implementation guidance", false, []string{"4", "5", "6", "7", "8", "9"}},
			{"Annex C", "Relationship to other standards - mapping to IEC 60601-1, ISO 14971", false, []string{"general"}},
		},
		KeyTerms: []string{
			"SOFTWARE SAFETY CLASS",
			"CLASS A",
			"CLASS B",
			"CLASS C",
			"SOUP",
			"SOFTWARE UNIT",
			"SOFTWARE ITEM",
			"SOFTWARE SYSTEM",
			"SOFTWARE ARCHITECTURE",
			"TRACEABILITY",
			"SOFTWARE ANOMALY",
			"SOFTWARE PROBLEM REPORT",
		},
		KeyTables: []Exhibit{
			{"Table A.1", "Software safety classification - determines required activities based on risk", "4.3", []string{"5", "7"}},
			{"Table A.2", "Activities required by software safety class", "Annex A", []string{"4.3", "5"}},
		},
		KeyFigures: []Exhibit{
			{"Figure 1", "Software development process overview", "5", []string{"4"}},
			{"Figure 2", "Relationship between software items, units, and systems", "3", []string{"5"}},
		},
		RelatedStandards: []RelatedStandard{
			{"ISO_14971", "normative_reference", "Risk management - required for software safety classification and risk control"},
			{"IEC_60601-1", "overlapping", "Medical electrical equipment - clause 14 (PEMS) references IEC 62304 for software"},
			{"IEC_82304-1", "overlapping", "Health software - general requirements for standalone health software"},
			{"ISO_13485", "overlapping", "Quality management - design control requirements apply to software development"},
		},
		Organization: "IEC",
		Year:         "2006+AMD1:2015",
		Pages:        80,
	})

	// Cross-references for quick topic lookup.

	l.AddCrossReference(&CrossReference{
		Topic:           "leakage current",
		Aliases:         []string{"patient leakage current", "leakage current limits", "touch current", "earth leakage"},
		PrimaryStandard: "IEC_60601-1",
		PrimarySection:  "8.7",
		PrimaryNote:     "Allowable values in Table 3 and Table 4. Test methods in Annex F.",
		AlsoSee: []AlsoSee{
			{"IEC_60601-1", "Annex F", "Test circuits and measurement methods"},
			{"ISO_14708-1", "5", "Implant-specific electrical requirements"},
		},
	})

	l.AddCrossReference(&CrossReference{
		Topic:           "software safety classification",
		Aliases:         []string{"software class", "Class A", "Class B", "Class C", "safety classification"},
		PrimaryStandard: "IEC_62304",
		PrimarySection:  "4.3",
		PrimaryNote:     "Classification based on severity of harm. Determines required activities.",
		AlsoSee: []AlsoSee{
			{"IEC_60601-1", "14", "PEMS requirements reference 62304"},
			{"ISO_14971", "5", "Risk analysis informs classification"},
		},
	})

	l.AddCrossReference(&CrossReference{
		Topic:           "risk management",
		Aliases:         []string{"risk analysis", "hazard analysis", "risk control", "risk assessment"},
		PrimaryStandard: "ISO_14971",
		PrimarySection:  "4-10",
		PrimaryNote:     "Complete risk management process. Sections 4-10 cover plan through post-production.",
		AlsoSee: []AlsoSee{
			{"IEC_60601-1", "4", "Risk management requirements for ME equipment"},
			{"IEC_62304", "7", "Software-specific risk management"},
		},
	})

	l.AddCrossReference(&CrossReference{
		Topic:           "essential performance",
		Aliases:         []string{"EP", "clinical function"},
		PrimaryStandard: "IEC_60601-1",
		PrimarySection:  "4.3",
		PrimaryNote:     "Performance necessary to avoid unacceptable risk. Manufacturer-defined.",
		AlsoSee: []AlsoSee{
			{"ISO_14971", "5", "Risk analysis identifies essential performance"},
		},
	})

	l.AddCrossReference(&CrossReference{
		Topic:           "applied part",
		Aliases:         []string{"applied parts", "Type B", "Type BF", "Type CF", "patient connection"},
		PrimaryStandard: "IEC_60601-1",
		PrimarySection:  "6.3",
		PrimaryNote:     "Classification in Table 1. Affects leakage current limits.",
		AlsoSee: []AlsoSee{
			{"IEC_60601-1", "8.7", "Leakage limits by applied part type"},
		},
	})

	l.AddCrossReference(&CrossReference{
		Topic:           "biocompatibility",
		Aliases:         []string{"biocompatible", "biological evaluation", "ISO 10993"},
		PrimaryStandard: "IEC_60601-1",
		PrimarySection:  "11.7",
		PrimaryNote:     "References ISO 10993-1 for biological evaluation.",
		AlsoSee: []AlsoSee{
			{"ISO_14708-1", "11", "Implant-specific biocompatibility"},
		},
	})

	l.AddCrossReference(&CrossReference{
		Topic:           "SOUP",
		Aliases:         []string{"software of unknown provenance", "OTS", "off-the-shelf software", "third-party software"},
		PrimaryStandard: "IEC_62304",
		PrimarySection:  "5.3",
		PrimaryNote:     "Requirements for using SOUP in medical device software.",
	})

	l.AddCrossReference(&CrossReference{
		Topic:           "creepage",
		Aliases:         []string{"creepage distance", "air clearance", "clearance", "insulation"},
		PrimaryStandard: "IEC_60601-1",
		PrimarySection:  "8.9",
		PrimaryNote:     "Creepage distances and air clearances in Table 6 and Table 12.",
	})

	l.AddCrossReference(&CrossReference{
		Topic:           "usability",
		Aliases:         []string{"usability engineering", "human factors", "use error"},
		PrimaryStandard: "IEC_60601-1",
		PrimarySection:  "12",
		PrimaryNote:     "Accuracy of controls. Full usability in IEC 60601-1-6 / IEC 62366.",
		AlsoSee: []AlsoSee{
			{"ISO_14971", "5", "Use errors as hazards"},
		},
	})

	l.AddCrossReference(&CrossReference{
		Topic:           "alarm",
		Aliases:         []string{"alarms", "alarm system", "alert", "alarm signal"},
		PrimaryStandard: "IEC_60601-1",
		PrimarySection:  "Annex A",
		PrimaryNote:     "Normative annex for alarm systems. Full requirements in IEC 60601-1-8.",
	})
}
