// Package steps contains the Godog step definitions and test bootstrap.
package steps

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
)

// registerAPISteps wires the request-side steps.
func registerAPISteps(ctx *godog.ScenarioContext, world *TestWorld) {
	ctx.Step(`^the API server is running$`, world.theAPIServerIsRunning)
	ctx.Step(`^I am logged in as the administrator$`, world.iAmLoggedInAsTheAdministrator)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, world.iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, world.iSendARequestToWithBody)
}

// registerResponseSteps wires the assertion-side steps.
func registerResponseSteps(ctx *godog.ScenarioContext, world *TestWorld) {
	ctx.Step(`^the response status should be (\d+)$`, world.theResponseStatusShouldBe)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, world.theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, world.theResponseFieldShouldExist)
	ctx.Step(`^the response array "([^"]*)" should have (\d+) entries$`, world.theResponseArrayShouldHaveEntries)
	ctx.Step(`^I remember the response field "([^"]*)" as "([^"]*)"$`, world.iRememberTheResponseFieldAs)
}

func (w *TestWorld) theAPIServerIsRunning() error {
	resp, err := w.client.Get(w.server.URL + "/health")
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("expected health status 200, got %d", resp.StatusCode)
	}
	return nil
}

func (w *TestWorld) iAmLoggedInAsTheAdministrator() error {
	body := fmt.Sprintf(`{"email":%q,"password":"qualquer"}`, adminEmail)
	resp, err := w.client.Post(
		w.server.URL+"/api/v1/auth/login",
		"application/json",
		strings.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("login request failed: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read login response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("login failed with status %d: %s", resp.StatusCode, payload)
	}

	var parsed map[string]any
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return fmt.Errorf("failed to parse login response: %w", err)
	}
	token, _ := parsed["access_token"].(string)
	if token == "" {
		return fmt.Errorf("login response carried no access token: %s", payload)
	}
	w.token = token
	return nil
}

func (w *TestWorld) iSendARequestTo(method, endpoint string) error {
	return w.doRequest(method, endpoint, nil)
}

func (w *TestWorld) iSendARequestToWithBody(method, endpoint string, body *godog.DocString) error {
	return w.doRequest(method, endpoint, strings.NewReader(w.substitute(body.Content)))
}

// doRequest performs an HTTP call against the in-process server, carrying the
// session token when one was obtained.
func (w *TestWorld) doRequest(method, endpoint string, body io.Reader) error {
	req, err := http.NewRequest(method, w.server.URL+w.substitute(endpoint), body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if w.token != "" {
		req.Header.Set("Authorization", "Bearer "+w.token)
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	w.lastResp = resp
	w.lastBody = payload
	return nil
}

// substitute replaces {name} placeholders with previously remembered values.
func (w *TestWorld) substitute(s string) string {
	for name, value := range w.vars {
		s = strings.ReplaceAll(s, "{"+name+"}", value)
	}
	return s
}

// lookupField walks a dotted path (e.g. "user.email" or "items.0.quantity")
// through the last JSON response.
func (w *TestWorld) lookupField(path string) (any, error) {
	var parsed any
	if err := json.Unmarshal(w.lastBody, &parsed); err != nil {
		return nil, fmt.Errorf("response is not valid JSON: %s", w.lastBody)
	}

	current := parsed
	for _, part := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[part]
			if !ok {
				return nil, fmt.Errorf("field %q not found in response: %s", path, w.lastBody)
			}
			current = value
		case []any:
			index, err := strconv.Atoi(part)
			if err != nil || index < 0 || index >= len(node) {
				return nil, fmt.Errorf("invalid array index %q in path %q", part, path)
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("field %q not found in response: %s", path, w.lastBody)
		}
	}
	return current, nil
}

// formatValue renders a JSON leaf the way the feature files write it.
func formatValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return "null"
	default:
		encoded, _ := json.Marshal(v)
		return string(encoded)
	}
}

func (w *TestWorld) theResponseStatusShouldBe(expected int) error {
	if w.lastResp == nil {
		return fmt.Errorf("no request was made")
	}
	if w.lastResp.StatusCode != expected {
		return fmt.Errorf("expected status %d, got %d: %s", expected, w.lastResp.StatusCode, w.lastBody)
	}
	return nil
}

func (w *TestWorld) theResponseFieldShouldBe(field, expected string) error {
	value, err := w.lookupField(field)
	if err != nil {
		return err
	}
	if got := formatValue(value); got != expected {
		return fmt.Errorf("expected field %q to be %q, got %q", field, expected, got)
	}
	return nil
}

func (w *TestWorld) theResponseFieldShouldExist(field string) error {
	_, err := w.lookupField(field)
	return err
}

func (w *TestWorld) theResponseArrayShouldHaveEntries(field string, expected int) error {
	value, err := w.lookupField(field)
	if err != nil {
		return err
	}
	array, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field %q is not an array in response: %s", field, w.lastBody)
	}
	if len(array) != expected {
		return fmt.Errorf("expected %d entries in %q, got %d", expected, field, len(array))
	}
	return nil
}

func (w *TestWorld) iRememberTheResponseFieldAs(field, name string) error {
	value, err := w.lookupField(field)
	if err != nil {
		return err
	}
	w.vars[name] = formatValue(value)
	return nil
}
