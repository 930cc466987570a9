package i18n

var translations = map[Language]map[string]string{
	LangFR: {
		"transferFailed":    "Votre virement n'a pas été effectué, veuillez contacter votre banque",
		"transferCategory":  "Virement",
		"cardFrozen":        "Votre carte a été gelée",
		"cardUnfrozen":      "Votre carte a été réactivée",
		"goalCreated":       "Objectif « %s » créé",
		"cashbackActivated": "Cashback %s activé",
		"avatarUpdated":     "Photo de profil mise à jour",
		"languageChanged":   "Langue mise à jour",
		"welcomeBack":       "Bon retour parmi nous",
	},
	LangEN: {
		"transferFailed":    "Your transfer was not completed, please contact your bank",
		"transferCategory":  "Transfer",
		"cardFrozen":        "Your card has been frozen",
		"cardUnfrozen":      "Your card has been unfrozen",
		"goalCreated":       "Goal \"%s\" created",
		"cashbackActivated": "Cashback %s activated",
		"avatarUpdated":     "Profile picture updated",
		"languageChanged":   "Language updated",
		"welcomeBack":       "Welcome back",
	},
}

var months = map[Language][]string{
	LangFR: {
		"janvier", "février", "mars", "avril", "mai", "juin",
		"juillet", "août", "septembre", "octobre", "novembre", "décembre",
	},
	LangEN: {
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
}

var shortMonths = map[Language][]string{
	LangFR: {"jan", "fév", "mar", "avr", "mai", "juin", "juil", "août", "sep", "oct", "nov", "déc"},
	LangEN: {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
}
