package integration

import (
	"fmt"
	"sync"
	"testing"

	"GoNLP/internal/nlp"
	"GoNLP/internal/testutil"
	"GoNLP/internal/value"
)

func TestConcurrentInvocations(t *testing.T) {
	r := testutil.NewRegistry(t)

	want, err := r.Invoke(nlp.KeywordsModuleName, testutil.KeywordsInput("cat dog cat bird dog cat", 2))
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	errors := make(chan error, 100)

	// Spawn 50 concurrent callers per module.
	for i := 0; i < 50; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			got, err := r.Invoke(nlp.KeywordsModuleName, testutil.KeywordsInput("cat dog cat bird dog cat", 2))
			if err != nil {
				errors <- err
				return
			}
			if diff := testutil.ValueDiff(want, got); diff != "" {
				errors <- fmt.Errorf("keywords differ (-want +got):\n%s", diff)
			}
		}()
		go func() {
			defer wg.Done()
			if _, err := r.Invoke(nlp.SentimentModuleName, testutil.TextInput("a great and wonderful day")); err != nil {
				errors <- err
			}
		}()
		go func() {
			defer wg.Done()
			if _, err := r.Invoke(nlp.LanguageModuleName, testutil.TextInput("der hund und die katze")); err != nil {
				errors <- err
			}
		}()
	}

	wg.Wait()
	close(errors)

	for err := range errors {
		t.Errorf("invocation error: %v", err)
	}
}

func TestConcurrentRegisterAndInvoke(t *testing.T) {
	r := testutil.NewRegistry(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = r.Names()
			_, _ = r.Get(nlp.SentimentModuleName)
		}()
		go func() {
			defer wg.Done()
			out, err := r.Invoke(nlp.SentimentModuleName, testutil.TextInput("terrible"))
			if err != nil {
				t.Errorf("invoke: %v", err)
				return
			}
			if !value.Conforms(out, nlp.SentimentOutputType) {
				t.Errorf("output %v does not conform to %s", out, nlp.SentimentOutputType)
			}
		}()
	}

	// Re-registering an existing analyzer must fail while readers run.
	for _, def := range nlp.Definitions() {
		if err := r.Register(def); err == nil {
			t.Errorf("duplicate registration of %s succeeded", def.Name)
		}
	}

	wg.Wait()
}
