package catalogio

// packSchemaJSON is the JSON schema a lesson-pack file must satisfy. It pins
// the structural invariants the registry relies on; semantic checks such as
// prerequisite resolution happen in content.NewRegistry.
const packSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["lessons"],
  "properties": {
    "name": {"type": "string"},
    "lessons": {
      "type": "array",
      "minItems": 1,
      "items": {"$ref": "#/$defs/lesson"}
    }
  },
  "$defs": {
    "id": {"type": "string", "minLength": 1},
    "difficulty": {"type": "integer", "minimum": 1, "maximum": 5},
    "lesson": {
      "type": "object",
      "required": ["id", "title", "concept"],
      "properties": {
        "id": {"$ref": "#/$defs/id"},
        "title": {"type": "string", "minLength": 1},
        "concept": {"type": "string"},
        "examples": {
          "type": "array",
          "items": {
            "type": "object",
            "required": ["code"],
            "properties": {
              "code": {"type": "string"},
              "explanation": {"type": "string"}
            }
          }
        },
        "exercises": {
          "type": "array",
          "items": {"$ref": "#/$defs/exercise"}
        },
        "single_choice": {
          "type": "array",
          "items": {"$ref": "#/$defs/singleChoice"}
        },
        "multi_choice": {
          "type": "array",
          "items": {"$ref": "#/$defs/multiChoice"}
        },
        "output_drills": {
          "type": "array",
          "items": {"$ref": "#/$defs/outputDrill"}
        },
        "bug_fix_drills": {
          "type": "array",
          "items": {"$ref": "#/$defs/bugFixDrill"}
        },
        "prerequisites": {
          "type": "array",
          "items": {"$ref": "#/$defs/id"}
        },
        "xp_reward": {"type": "integer", "minimum": 0},
        "skill_path": {"type": "string"}
      }
    },
    "exercise": {
      "type": "object",
      "required": ["id", "prompt", "test_cases"],
      "properties": {
        "id": {"$ref": "#/$defs/id"},
        "prompt": {"type": "string", "minLength": 1},
        "test_cases": {
          "type": "array",
          "minItems": 1,
          "items": {
            "type": "object",
            "required": ["expected"],
            "properties": {
              "input": {"type": "string"},
              "expected": {"type": "string"}
            }
          }
        },
        "hints": {"type": "array", "items": {"type": "string"}},
        "difficulty": {"$ref": "#/$defs/difficulty"},
        "concept": {"type": "string"},
        "starter_code": {"type": "string"}
      }
    },
    "singleChoice": {
      "type": "object",
      "required": ["id", "question", "choices", "correct"],
      "properties": {
        "id": {"$ref": "#/$defs/id"},
        "question": {"type": "string", "minLength": 1},
        "choices": {
          "type": "array",
          "minItems": 2,
          "items": {"type": "string"}
        },
        "correct": {"type": "integer", "minimum": 0},
        "explanation": {"type": "string"},
        "difficulty": {"$ref": "#/$defs/difficulty"},
        "concept": {"type": "string"}
      }
    },
    "multiChoice": {
      "type": "object",
      "required": ["id", "question", "choices", "correct"],
      "properties": {
        "id": {"$ref": "#/$defs/id"},
        "question": {"type": "string", "minLength": 1},
        "choices": {
          "type": "array",
          "minItems": 2,
          "items": {"type": "string"}
        },
        "correct": {
          "type": "array",
          "minItems": 1,
          "items": {"type": "integer", "minimum": 0}
        },
        "explanation": {"type": "string"},
        "difficulty": {"$ref": "#/$defs/difficulty"},
        "concept": {"type": "string"}
      }
    },
    "outputDrill": {
      "type": "object",
      "required": ["id", "code", "expected"],
      "properties": {
        "id": {"$ref": "#/$defs/id"},
        "code": {"type": "string", "minLength": 1},
        "expected": {"type": "string"},
        "explanation": {"type": "string"},
        "difficulty": {"$ref": "#/$defs/difficulty"},
        "concept": {"type": "string"}
      }
    },
    "bugFixDrill": {
      "type": "object",
      "required": ["id", "buggy_code", "fixed_code"],
      "properties": {
        "id": {"$ref": "#/$defs/id"},
        "buggy_code": {"type": "string", "minLength": 1},
        "bug_type": {
          "type": "string",
          "enum": ["syntax", "logic", "runtime", "indentation"]
        },
        "description": {"type": "string"},
        "fixed_code": {"type": "string", "minLength": 1},
        "explanation": {"type": "string"},
        "difficulty": {"$ref": "#/$defs/difficulty"},
        "concept": {"type": "string"},
        "hints": {"type": "array", "items": {"type": "string"}}
      }
    }
  }
}`
