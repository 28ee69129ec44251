package prompt

import "fmt"

// Scripted answers prompts from a queue. Each answer is a string (Text), a
// bool (Confirm) or an error returned as-is. An empty queue cancels.
type Scripted struct {
	Answers []any
	Asked   []string
}

// Text implements Prompter.
func (s *Scripted) Text(message, defaultValue string) (string, error) {
	answer, err := s.next(message)
	if err != nil {
		return "", err
	}
	v, ok := answer.(string)
	if !ok {
		return "", fmt.Errorf("scripted answer for %q is %T, want string", message, answer)
	}
	if v == "" {
		return defaultValue, nil
	}
	return v, nil
}

// Confirm implements Prompter.
func (s *Scripted) Confirm(message string, _ bool) (bool, error) {
	answer, err := s.next(message)
	if err != nil {
		return false, err
	}
	v, ok := answer.(bool)
	if !ok {
		return false, fmt.Errorf("scripted answer for %q is %T, want bool", message, answer)
	}
	return v, nil
}

func (s *Scripted) next(message string) (any, error) {
	s.Asked = append(s.Asked, message)
	if len(s.Answers) == 0 {
		return nil, ErrCancelled
	}
	answer := s.Answers[0]
	s.Answers = s.Answers[1:]
	if err, ok := answer.(error); ok {
		return nil, err
	}
	return answer, nil
}
