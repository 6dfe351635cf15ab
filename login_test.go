package azauth

import "testing"

func TestLoginCommand(t *testing.T) {
	tests := []struct {
		name string
		opts []LoginOption
		want string
	}{
		{
			name: "bare login",
			opts: nil,
			want: "az login",
		},
		{
			name: "scopes",
			opts: []LoginOption{WithScopes("s1", "s2")},
			want: "az login --scope s1 s2",
		},
		{
			name: "claims are encoded and force a logout first",
			opts: []LoginOption{WithClaims("abc")},
			want: "az logout\naz login --claims YWJj",
		},
		{
			name: "claims take priority over scopes",
			opts: []LoginOption{WithScopes("s1"), WithClaims("abc")},
			want: "az logout\naz login --claims YWJj",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LoginCommand(tt.opts...); got != tt.want {
				t.Errorf("LoginCommand() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoginMessage(t *testing.T) {
	notInConsole := WithCloudConsoleCheck(func() bool { return false })
	inConsole := WithCloudConsoleCheck(func() bool { return true })

	tests := []struct {
		name string
		opts []LoginOption
		want string
	}{
		{
			name: "terminal session includes the command",
			opts: []LoginOption{notInConsole},
			want: "To re-authenticate, please run:\naz login" +
				"\n\nIf the problem persists, please contact your tenant administrator.",
		},
		{
			name: "terminal session with scopes",
			opts: []LoginOption{notInConsole, WithScopes("https://management.azure.com//.default")},
			want: "To re-authenticate, please run:\naz login --scope https://management.azure.com//.default" +
				"\n\nIf the problem persists, please contact your tenant administrator.",
		},
		{
			name: "cloud console has no shell to run a command in",
			opts: []LoginOption{inConsole, WithScopes("https://management.azure.com//.default")},
			want: "To re-authenticate, please refresh Azure Portal." +
				"\n\nIf the problem persists, please contact your tenant administrator.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LoginMessage(tt.opts...); got != tt.want {
				t.Errorf("LoginMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
