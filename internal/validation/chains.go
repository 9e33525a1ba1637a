package validation

var idField = Field{
	Name:   "id",
	Source: Path,
	Rules: []Rule{
		PositiveInt("id must be a positive integer"),
	},
}

var emailField = Field{
	Name:   "email",
	Source: Body,
	Rules: []Rule{
		NotEmpty("email must not be empty"),
		Email("email must be a valid email address"),
	},
}

var passwordField = Field{
	Name:   "password",
	Source: Body,
	Rules: []Rule{
		NotEmpty("password must not be empty"),
		LengthBetween(8, 20, "password must be between 8 and 20 characters"),
		Matches(alphanumeric, "Password must contain only alphanumeric characters"),
	},
}

var todoBodyFields = Chain{
	{
		Name:   "title",
		Source: Body,
		Rules: []Rule{
			NotEmpty("title must not be empty"),
			MaxLength(30, "title must not exceed 30 characters"),
		},
	},
	{
		Name:   "content",
		Source: Body,
		Rules: []Rule{
			NotEmpty("content must not be empty"),
		},
	},
}

var (
	SignUp = Chain{
		{
			Name:   "username",
			Source: Body,
			Rules: []Rule{
				NotEmpty("username must not be empty"),
				MaxLength(20, "username must not exceed 20 characters"),
			},
		},
		emailField,
		passwordField,
	}

	SignIn = Chain{emailField, passwordField}

	TodoID = Chain{idField}

	TodoCreate = todoBodyFields

	TodoUpdate = TodoID.Then(todoBodyFields)
)
