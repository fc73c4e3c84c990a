package validators

import "testing"

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"ALICE@x.com ":      "alice@x.com",
		"  Bob@Example.COM": "bob@example.com",
		"carol@x.com":       "carol@x.com",
		"   ":               "",
	}

	for in, want := range cases {
		if got := NormalizeEmail(in); got != want {
			t.Fatalf("NormalizeEmail(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEmailValidator(t *testing.T) {
	t.Parallel()

	if err := EmailValidator(""); err != ErrEmailEmpty {
		t.Fatalf("expected ErrEmailEmpty, got %v", err)
	}
	if err := EmailValidator("not-an-address"); err != ErrEmailInvalid {
		t.Fatalf("expected ErrEmailInvalid, got %v", err)
	}
	if err := EmailValidator("alice@x.com"); err != nil {
		t.Fatalf("expected valid address, got %v", err)
	}
}

func TestPasswordValidator(t *testing.T) {
	t.Parallel()

	if err := PasswordValidator(""); err != ErrPasswordEmpty {
		t.Fatalf("expected ErrPasswordEmpty, got %v", err)
	}
	if err := PasswordValidator("secret"); err != nil {
		t.Fatalf("expected valid password, got %v", err)
	}
}

func TestUsernameValidator(t *testing.T) {
	t.Parallel()

	if err := UsernameValidator(""); err != ErrUsernameEmpty {
		t.Fatalf("expected ErrUsernameEmpty, got %v", err)
	}
	if err := UsernameValidator("alice"); err != nil {
		t.Fatalf("expected valid username, got %v", err)
	}
}

func TestReviewValidator(t *testing.T) {
	t.Parallel()

	if err := ReviewValidator(""); err != ErrReviewEmpty {
		t.Fatalf("expected ErrReviewEmpty, got %v", err)
	}
	if err := ReviewValidator("great product"); err != nil {
		t.Fatalf("expected valid review, got %v", err)
	}
}
