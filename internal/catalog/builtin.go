package catalog

import "github.com/phanindra-max/FrameworkLens/internal/model"

// Builtin returns the default questionnaire covering the three readiness
// frameworks. Deployments can replace it with a YAML catalog file; see
// Load.
func Builtin() []model.Framework {
	return []model.Framework{
		{
			Area:        model.AreaNISTAIRMF,
			Name:        "NIST AI RMF",
			Description: "Functions: Govern, Map, Measure, Manage",
			Sections: []model.Section{
				{
					Name: "Govern",
					Questions: []model.Question{
						{Prompt: "Defined AI risk governance roles and responsibilities."},
						{Prompt: "Approved AI risk policies and oversight cadence."},
						{Prompt: "Documented risk appetite for AI systems."},
					},
				},
				{
					Name: "Map",
					Questions: []model.Question{
						{Prompt: "Documented intended AI system purpose and context."},
						{Prompt: "Identified stakeholders impacted by AI outcomes."},
						{Prompt: "Tracked data sources and lineage for AI systems."},
					},
				},
				{
					Name: "Measure",
					Questions: []model.Question{
						{Prompt: "Implemented bias and fairness evaluation procedures."},
						{Prompt: "Conducted model performance monitoring and drift checks."},
						{Prompt: "Validated data quality and representativeness."},
					},
				},
				{
					Name: "Manage",
					Questions: []model.Question{
						{Prompt: "Implemented human oversight and escalation workflows."},
						{Prompt: "Defined incident response for AI failures."},
						{Prompt: "Maintained change management for AI models."},
					},
				},
			},
		},
		{
			Area:        model.AreaCOSOERM,
			Name:        "COSO ERM",
			Description: "Components aligned to strategy and performance",
			Sections: []model.Section{
				{
					Name: "Governance and Culture",
					Questions: []model.Question{
						{Prompt: "Board or leadership oversight of enterprise risks."},
						{Prompt: "Defined ethical values and accountability."},
						{Prompt: "Aligned incentives with risk-aware behavior."},
					},
				},
				{
					Name: "Strategy and Objective-Setting",
					Questions: []model.Question{
						{Prompt: "Risk appetite aligned to strategy."},
						{Prompt: "Objectives consider risk and uncertainty."},
						{Prompt: "Resource allocation reflects risk priorities."},
					},
				},
				{
					Name: "Performance",
					Questions: []model.Question{
						{Prompt: "Identified and assessed key enterprise risks."},
						{Prompt: "Prioritized risks using consistent criteria."},
						{Prompt: "Implemented risk responses and controls."},
					},
				},
				{
					Name: "Review and Revision",
					Questions: []model.Question{
						{Prompt: "Periodic review of risk posture and controls."},
						{Prompt: "Adapted to internal and external changes."},
					},
				},
				{
					Name: "Information, Communication, and Reporting",
					Questions: []model.Question{
						{Prompt: "Reliable risk data and reporting cadence."},
						{Prompt: "Cross-functional communication of risk issues."},
					},
				},
			},
		},
		{
			Area:        model.AreaGRC,
			Name:        "GRC Tools and Practices",
			Description: "Core GRC process capabilities",
			Sections: []model.Section{
				{
					Name: "Risk Register",
					Questions: []model.Question{
						{Prompt: "Maintained centralized risk register."},
						{Prompt: "Assigned risk owners and mitigation plans."},
					},
				},
				{
					Name: "Control Library",
					Questions: []model.Question{
						{Prompt: "Documented controls mapped to risks."},
						{Prompt: "Evidence collection and testing process."},
					},
				},
				{
					Name: "Audit and Assurance",
					Questions: []model.Question{
						{Prompt: "Internal audit plan aligned to top risks."},
						{Prompt: "Remediation tracking for audit findings."},
					},
				},
				{
					Name: "Third-Party Risk",
					Questions: []model.Question{
						{Prompt: "Vendor due diligence and periodic reviews."},
						{Prompt: "Contractual risk clauses for AI vendors."},
					},
				},
				{
					Name: "Incident and Issue Management",
					Questions: []model.Question{
						{Prompt: "Centralized incident reporting and triage."},
						{Prompt: "Root cause analysis and corrective action."},
					},
				},
			},
		},
	}
}
