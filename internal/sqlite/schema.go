package sqlite

// Version 1 tables. Every statement is safe to re-run against a database
// that already has the table.
const (
	createUser = `CREATE TABLE IF NOT EXISTS "USER" (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id TEXT NOT NULL UNIQUE,
    email TEXT NOT NULL,
    display_name TEXT,
    photo_url TEXT,
    created_date TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%f', 'now') || '000000Z'),
    updated_date TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%f', 'now') || '000000Z')
);`

	createPatient = `CREATE TABLE IF NOT EXISTS "PATIENT" (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id TEXT NOT NULL,
    first_name TEXT NOT NULL,
    last_name TEXT NOT NULL,
    birth_date TEXT,
    gender TEXT,
    blood_type TEXT,
    weight REAL,
    weight_unit TEXT,
    height REAL,
    height_unit TEXT,
    profile_picture TEXT,
    linked_health_system INTEGER NOT NULL DEFAULT 0,
    created_date TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%f', 'now') || '000000Z'),
    updated_date TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%f', 'now') || '000000Z'),
    FOREIGN KEY (user_id) REFERENCES "USER"(user_id) ON DELETE CASCADE
);`

	createContact = `CREATE TABLE IF NOT EXISTS "CONTACT" (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    patient_id INTEGER NOT NULL,
    first_name TEXT NOT NULL,
    last_name TEXT,
    phone_number TEXT NOT NULL UNIQUE,
    email TEXT,
    relationship TEXT,
    address TEXT,
    linked_health_system INTEGER NOT NULL DEFAULT 0,
    created_date TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%f', 'now') || '000000Z'),
    updated_date TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%f', 'now') || '000000Z'),
    FOREIGN KEY (patient_id) REFERENCES "PATIENT"(id) ON DELETE CASCADE
);`

	createAllergy = `CREATE TABLE IF NOT EXISTS "PATIENT_ALLERGY" (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    patient_id INTEGER NOT NULL,
    allergy_name TEXT NOT NULL,
    reaction TEXT,
    severity TEXT,
    notes TEXT,
    linked_health_system INTEGER NOT NULL DEFAULT 0,
    created_date TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%f', 'now') || '000000Z'),
    updated_date TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%f', 'now') || '000000Z'),
    FOREIGN KEY (patient_id) REFERENCES "PATIENT"(id) ON DELETE CASCADE
);`

	createMedication = `CREATE TABLE IF NOT EXISTS "PATIENT_MEDICATION" (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    patient_id INTEGER NOT NULL,
    medication_name TEXT NOT NULL,
    dosage TEXT,
    frequency TEXT,
    start_date TEXT,
    end_date TEXT,
    prescriber TEXT,
    notes TEXT,
    linked_health_system INTEGER NOT NULL DEFAULT 0,
    created_date TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%f', 'now') || '000000Z'),
    updated_date TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%f', 'now') || '000000Z'),
    FOREIGN KEY (patient_id) REFERENCES "PATIENT"(id) ON DELETE CASCADE
);`

	createGoal = `CREATE TABLE IF NOT EXISTS "PATIENT_GOAL" (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    patient_id INTEGER NOT NULL,
    goal_description TEXT NOT NULL,
    target_date TEXT,
    status TEXT NOT NULL DEFAULT 'active',
    linked_health_system INTEGER NOT NULL DEFAULT 0,
    created_date TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%f', 'now') || '000000Z'),
    updated_date TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%f', 'now') || '000000Z'),
    FOREIGN KEY (patient_id) REFERENCES "PATIENT"(id) ON DELETE CASCADE
);`

	createNote = `CREATE TABLE IF NOT EXISTS "PATIENT_NOTE" (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    patient_id INTEGER NOT NULL,
    topic TEXT NOT NULL,
    details TEXT,
    reminder_date TEXT,
    linked_health_system INTEGER NOT NULL DEFAULT 0,
    created_date TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%f', 'now') || '000000Z'),
    updated_date TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%f', 'now') || '000000Z'),
    FOREIGN KEY (patient_id) REFERENCES "PATIENT"(id) ON DELETE CASCADE
);`

	createHospitalization = `CREATE TABLE IF NOT EXISTS "PATIENT_HOSPITALIZATION" (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    patient_id INTEGER NOT NULL,
    admission_date TEXT NOT NULL,
    discharge_date TEXT NOT NULL,
    facility TEXT,
    details TEXT,
    linked_health_system INTEGER NOT NULL DEFAULT 0,
    created_date TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%f', 'now') || '000000Z'),
    updated_date TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%f', 'now') || '000000Z'),
    FOREIGN KEY (patient_id) REFERENCES "PATIENT"(id) ON DELETE CASCADE
);`

	createSurgeryProcedure = `CREATE TABLE IF NOT EXISTS "PATIENT_SURGERY_PROCEDURE" (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    patient_id INTEGER NOT NULL,
    procedure_name TEXT NOT NULL,
    surgeon_name TEXT,
    procedure_date TEXT,
    facility TEXT,
    notes TEXT,
    linked_health_system INTEGER NOT NULL DEFAULT 0,
    created_date TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%f', 'now') || '000000Z'),
    updated_date TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%f', 'now') || '000000Z'),
    FOREIGN KEY (patient_id) REFERENCES "PATIENT"(id) ON DELETE CASCADE
);`

	createDischargeInstruction = `CREATE TABLE IF NOT EXISTS "PATIENT_DISCHARGE_INSTRUCTION" (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    patient_id INTEGER NOT NULL,
    summary TEXT NOT NULL,
    discharge_date TEXT,
    details TEXT,
    linked_health_system INTEGER NOT NULL DEFAULT 0,
    created_date TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%f', 'now') || '000000Z'),
    updated_date TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%f', 'now') || '000000Z'),
    FOREIGN KEY (patient_id) REFERENCES "PATIENT"(id) ON DELETE CASCADE
);`

	createEquipment = `CREATE TABLE IF NOT EXISTS "PATIENT_EQUIPMENT" (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    patient_id INTEGER NOT NULL,
    equipment_name TEXT NOT NULL UNIQUE COLLATE NOCASE,
    equipment_description TEXT,
    linked_health_system INTEGER NOT NULL DEFAULT 0,
    created_date TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%f', 'now') || '000000Z'),
    updated_date TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%f', 'now') || '000000Z'),
    FOREIGN KEY (patient_id) REFERENCES "PATIENT"(id) ON DELETE CASCADE
);`

	createEmergencyCare = `CREATE TABLE IF NOT EXISTS "PATIENT_EMERGENCY_CARE" (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    patient_id INTEGER NOT NULL,
    topic TEXT NOT NULL,
    details TEXT,
    linked_health_system INTEGER NOT NULL DEFAULT 0,
    created_date TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%f', 'now') || '000000Z'),
    updated_date TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%f', 'now') || '000000Z'),
    FOREIGN KEY (patient_id) REFERENCES "PATIENT"(id) ON DELETE CASCADE
);`

	createTrackCategory = `CREATE TABLE IF NOT EXISTS "TRACK_CATEGORY" (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE,
    created_date TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%f', 'now') || '000000Z'),
    updated_date TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%f', 'now') || '000000Z')
);`

	createTrackItem = `CREATE TABLE IF NOT EXISTS "TRACK_ITEM" (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    category_id INTEGER NOT NULL,
    name TEXT NOT NULL,
    frequency TEXT NOT NULL DEFAULT 'daily',
    created_date TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%f', 'now') || '000000Z'),
    updated_date TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%f', 'now') || '000000Z'),
    UNIQUE (category_id, name),
    FOREIGN KEY (category_id) REFERENCES "TRACK_CATEGORY"(id) ON DELETE CASCADE
);`

	createQuestion = `CREATE TABLE IF NOT EXISTS "QUESTION" (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    item_id INTEGER NOT NULL,
    question_text TEXT NOT NULL,
    question_type TEXT NOT NULL DEFAULT 'text',
    required INTEGER NOT NULL DEFAULT 0,
    parent_question_id INTEGER,
    display_condition TEXT,
    created_date TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%f', 'now') || '000000Z'),
    updated_date TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%f', 'now') || '000000Z'),
    UNIQUE (item_id, question_text),
    FOREIGN KEY (item_id) REFERENCES "TRACK_ITEM"(id) ON DELETE CASCADE,
    FOREIGN KEY (parent_question_id) REFERENCES "QUESTION"(id) ON DELETE CASCADE
);`

	createResponseOption = `CREATE TABLE IF NOT EXISTS "RESPONSE_OPTION" (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    question_id INTEGER NOT NULL,
    option_text TEXT NOT NULL,
    created_date TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%f', 'now') || '000000Z'),
    updated_date TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%f', 'now') || '000000Z'),
    UNIQUE (question_id, option_text),
    FOREIGN KEY (question_id) REFERENCES "QUESTION"(id) ON DELETE CASCADE
);`

	createTrackItemEntry = `CREATE TABLE IF NOT EXISTS "TRACK_ITEM_ENTRY" (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    patient_id INTEGER NOT NULL,
    track_item_id INTEGER NOT NULL,
    date TEXT NOT NULL,
    created_date TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%f', 'now') || '000000Z'),
    updated_date TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%f', 'now') || '000000Z'),
    FOREIGN KEY (patient_id) REFERENCES "PATIENT"(id) ON DELETE CASCADE,
    FOREIGN KEY (track_item_id) REFERENCES "TRACK_ITEM"(id) ON DELETE CASCADE
);`

	createTrackResponse = `CREATE TABLE IF NOT EXISTS "TRACK_RESPONSE" (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    track_item_entry_id INTEGER NOT NULL,
    question_id INTEGER NOT NULL,
    answer TEXT NOT NULL,
    created_date TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%f', 'now') || '000000Z'),
    updated_date TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%f', 'now') || '000000Z'),
    FOREIGN KEY (track_item_entry_id) REFERENCES "TRACK_ITEM_ENTRY"(id) ON DELETE CASCADE,
    FOREIGN KEY (question_id) REFERENCES "QUESTION"(id) ON DELETE CASCADE
);`
)

// baseSchemaDDL lists the version 1 tables in foreign-key order.
var baseSchemaDDL = []string{
	createUser,
	createPatient,
	createContact,
	createAllergy,
	createMedication,
	createGoal,
	createNote,
	createHospitalization,
	createSurgeryProcedure,
	createDischargeInstruction,
	createEquipment,
	createEmergencyCare,
	createTrackCategory,
	createTrackItem,
	createQuestion,
	createResponseOption,
	createTrackItemEntry,
	createTrackResponse,
}

// parentIndexDDL indexes the foreign-key columns used by the by-parent
// lookups. Added in version 2.
var parentIndexDDL = []string{
	`CREATE INDEX IF NOT EXISTS idx_patient_user_id ON "PATIENT"(user_id);`,
	`CREATE INDEX IF NOT EXISTS idx_contact_patient_id ON "CONTACT"(patient_id);`,
	`CREATE INDEX IF NOT EXISTS idx_patient_allergy_patient_id ON "PATIENT_ALLERGY"(patient_id);`,
	`CREATE INDEX IF NOT EXISTS idx_patient_medication_patient_id ON "PATIENT_MEDICATION"(patient_id);`,
	`CREATE INDEX IF NOT EXISTS idx_patient_goal_patient_id ON "PATIENT_GOAL"(patient_id);`,
	`CREATE INDEX IF NOT EXISTS idx_patient_note_patient_id ON "PATIENT_NOTE"(patient_id);`,
	`CREATE INDEX IF NOT EXISTS idx_patient_hospitalization_patient_id ON "PATIENT_HOSPITALIZATION"(patient_id);`,
	`CREATE INDEX IF NOT EXISTS idx_patient_surgery_procedure_patient_id ON "PATIENT_SURGERY_PROCEDURE"(patient_id);`,
	`CREATE INDEX IF NOT EXISTS idx_patient_discharge_instruction_patient_id ON "PATIENT_DISCHARGE_INSTRUCTION"(patient_id);`,
	`CREATE INDEX IF NOT EXISTS idx_patient_equipment_patient_id ON "PATIENT_EQUIPMENT"(patient_id);`,
	`CREATE INDEX IF NOT EXISTS idx_patient_emergency_care_patient_id ON "PATIENT_EMERGENCY_CARE"(patient_id);`,
	`CREATE INDEX IF NOT EXISTS idx_track_item_category_id ON "TRACK_ITEM"(category_id);`,
	`CREATE INDEX IF NOT EXISTS idx_question_item_id ON "QUESTION"(item_id);`,
	`CREATE INDEX IF NOT EXISTS idx_question_parent_question_id ON "QUESTION"(parent_question_id);`,
	`CREATE INDEX IF NOT EXISTS idx_response_option_question_id ON "RESPONSE_OPTION"(question_id);`,
	`CREATE INDEX IF NOT EXISTS idx_track_item_entry_patient_id_date ON "TRACK_ITEM_ENTRY"(patient_id, date);`,
	`CREATE INDEX IF NOT EXISTS idx_track_item_entry_track_item_id ON "TRACK_ITEM_ENTRY"(track_item_id);`,
	`CREATE INDEX IF NOT EXISTS idx_track_response_track_item_entry_id ON "TRACK_RESPONSE"(track_item_entry_id);`,
	`CREATE INDEX IF NOT EXISTS idx_track_response_question_id ON "TRACK_RESPONSE"(question_id);`,
}
