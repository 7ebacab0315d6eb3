package reservation

// SampleFields seeds the in-memory fallback store so the dashboard is never
// empty on a fresh run without any backend configured.
func SampleFields() []Fields {
	return []Fields{
		{
			CustomerName: "Maria Santos",
			PhoneNumber:  "+1 (555) 010-2233",
			Date:         "2025-03-14",
			Time:         "19:00:00",
			PartySize:    4,
			Source:       string(SourceManual),
			Status:       string(StatusConfirmed),
			Notes:        "Window table if possible",
		},
		{
			CustomerName: "James Okafor",
			PhoneNumber:  "+1 (555) 440-7812",
			Date:         "2025-03-14",
			Time:         "20:30:00",
			PartySize:    2,
			Source:       string(SourceAICall),
			Status:       string(StatusPending),
			Notes:        "",
		},
		{
			CustomerName: "Lucia Ferreira",
			PhoneNumber:  "555-231-9087",
			Date:         "2025-03-15",
			Time:         "12:00:00",
			PartySize:    6,
			Source:       string(SourceAICall),
			Status:       string(StatusPending),
			Notes:        "Birthday lunch",
		},
	}
}
