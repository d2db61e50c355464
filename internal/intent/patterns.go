package intent

import "hybrid-command-router/internal/model"

// triggerPatterns maps each intent to its fixed keyword/phrase list.
// Scores are normalized by list length, so lists are kept deliberately
// short; padding a list dilutes every match in it.
var triggerPatterns = map[model.Intent][]string{
	model.IntentCalendar: {
		"calendar", "schedule", "meeting", "appointment", "event", "agenda",
	},
	model.IntentEmail: {
		"email", "emails", "inbox", "unread", "mail", "compose", "reply",
	},
	model.IntentTask: {
		"task", "tasks", "reminder", "remind", "todo", "remember", "note",
	},
	model.IntentWeather: {
		"weather", "temperature", "forecast", "rain", "sunny", "snow", "umbrella",
	},
	model.IntentGeneral: {
		"hello", "how are you", "thank", "joke", "help",
	},
	model.IntentTime: {
		"what time is it", "time", "clock", "what day is it", "date", "today", "current time",
	},
	model.IntentCalculation: {
		"calculate", "what is", "plus", "minus", "times", "divided", "divide",
	},
	model.IntentDeviceControl: {
		"battery", "brightness", "volume", "device", "storage", "flashlight",
	},
}
