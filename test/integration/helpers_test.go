//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func assertContains(t *testing.T, content, want string) {
	t.Helper()
	if !strings.Contains(content, want) {
		t.Errorf("content missing %q:\n%s", want, content)
	}
}

func assertNotContains(t *testing.T, content, unwanted string) {
	t.Helper()
	if strings.Contains(content, unwanted) {
		t.Errorf("content still has %q:\n%s", unwanted, content)
	}
}

// snapshotTree captures every file path and content under root.
func snapshotTree(t *testing.T, root string) map[string]string {
	t.Helper()
	files := make(map[string]string)
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}
		rel, _ := filepath.Rel(root, path)
		files[rel] = readFile(t, path)
		return nil
	})
	if err != nil {
		t.Fatalf("walking %s: %v", root, err)
	}
	return files
}

// grepTree returns the files under dir whose content contains needle.
func grepTree(t *testing.T, dir, needle string) []string {
	t.Helper()
	var hits []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}
		if strings.Contains(readFile(t, path), needle) {
			hits = append(hits, path)
		}
		return nil
	})
	if err != nil && !os.IsNotExist(err) {
		t.Fatalf("walking %s: %v", dir, err)
	}
	return hits
}

// scaffoldFrontendPackage lays out what the generator emits for a frontend
// plugin with the given id.
func scaffoldFrontendPackage(t *testing.T, id string) string {
	t.Helper()
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "package.json"), `{
  "name": "@internal/plugin-`+id+`",
  "version": "0.1.0",
  "description": "Generated frontend plugin",
  "portalis": {
    "pluginId": "`+id+`",
    "role": "frontend-plugin"
  }
}`)
	writeFile(t, filepath.Join(root, "yarn.lock"), "# yarn lockfile v1\n")

	comp := filepath.Join(root, "src", "components", "ExampleComponent")
	writeFile(t, filepath.Join(comp, "ExampleComponent.tsx"), `import React from 'react';
import { Content, Header, InfoCard, Page } from '@portalis/ui';
import { Grid } from '@material-ui/core';
import { ExampleFetchComponent } from '../ExampleFetchComponent';

export const ExampleComponent = () => (
  <Page themeId="tool">
    <Header title="Welcome to `+id+`!" />
    <Content>
      <Grid container spacing={3}>
        <Grid item>
          <InfoCard title="Information">About this plugin</InfoCard>
        </Grid>
        <Grid item>
          <ExampleFetchComponent />
        </Grid>
      </Grid>
    </Content>
  </Page>
);
`)
	writeFile(t, filepath.Join(comp, "ExampleComponent.test.tsx"), `import React from 'react';
import { render } from '@testing-library/react';
import { ExampleComponent } from './ExampleComponent';

describe('ExampleComponent', () => {
  it('renders the header', () => {
    const { getByText } = render(<ExampleComponent />);
    expect(getByText('Welcome to `+id+`!')).toBeDefined();
  });
});
`)
	writeFile(t, filepath.Join(comp, "index.ts"), "export { ExampleComponent } from './ExampleComponent';\n")

	fetch := filepath.Join(root, "src", "components", "ExampleFetchComponent")
	writeFile(t, filepath.Join(fetch, "ExampleFetchComponent.tsx"), `import React from 'react';
import { Table } from '@portalis/ui';
import todos from '../../data/todos.json';

export const ExampleFetchComponent = () => <Table data={todos} />;
`)
	writeFile(t, filepath.Join(fetch, "ExampleFetchComponent.test.tsx"), "describe('ExampleFetchComponent', () => {});\n")
	writeFile(t, filepath.Join(fetch, "index.ts"), "export { ExampleFetchComponent } from './ExampleFetchComponent';\n")

	writeFile(t, filepath.Join(root, "src", "data", "todos.json"), "[]\n")

	writeFile(t, filepath.Join(root, "src", "plugin.ts"), `import { createPlugin } from '@portalis/frontend';
import { rootRouteRef } from './routes';
import { ExampleComponent } from './components/ExampleComponent';
import { ExampleFetchComponent } from './components/ExampleFetchComponent';

export const plugin = createPlugin({
  id: '`+id+`',
  routes: {
    root: rootRouteRef,
  },
});

export const PluginPage = plugin.providePage({
  path: '/`+id+`',
  component: ExampleComponent,
});

export const ExampleFetchExtension = plugin.provideWidget({
  component: ExampleFetchComponent,
});
`)
	writeFile(t, filepath.Join(root, "src", "routes.ts"), `import { createRouteRef } from '@portalis/frontend';

export const rootRouteRef = createRouteRef({
  id: '`+id+`',
});
`)
	writeFile(t, filepath.Join(root, "src", "index.ts"), `export { plugin, PluginPage } from './plugin';
export { ExampleFetchComponent } from './components/ExampleFetchComponent';
`)

	writeFile(t, filepath.Join(root, "dev", "index.tsx"), "// local dev harness\n")
	return root
}

// scaffoldBackendPackage lays out what the generator emits for a backend
// plugin with the given id.
func scaffoldBackendPackage(t *testing.T, id string) string {
	t.Helper()
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "package.json"), `{
  "name": "@internal/plugin-`+id+`-backend",
  "version": "0.1.0",
  "description": "Generated backend plugin",
  "portalis": {
    "pluginId": "`+id+`",
    "role": "backend-plugin"
  }
}`)

	svc := filepath.Join(root, "src", "services", "ExampleTodoService")
	writeFile(t, filepath.Join(svc, "types.ts"), `export interface Todo {
  id: string;
  title: string;
}

export interface ExampleTodoService {
  listTodos(): Promise<Todo[]>;
  createTodo(input: { title: string }): Promise<Todo>;
}
`)
	writeFile(t, filepath.Join(svc, "createExampleTodoService.ts"), `import { ExampleTodoService, Todo } from './types';

export async function createExampleTodoService(options: {
  logger: unknown;
}): Promise<ExampleTodoService> {
  const todos: Todo[] = [];
  return {
    async listTodos() {
      return todos;
    },
    async createTodo(input) {
      const todo = { id: String(todos.length), title: input.title };
      todos.push(todo);
      return todo;
    },
  };
}
`)
	writeFile(t, filepath.Join(svc, "index.ts"), "export * from './types';\nexport * from './createExampleTodoService';\n")

	writeFile(t, filepath.Join(root, "src", "router.ts"), `import express from 'express';
import Router from 'express-promise-router';
import { LoggerService } from '@portalis/backend';
import { ExampleTodoService } from './services/ExampleTodoService';

export interface RouterOptions {
  logger: LoggerService;
  todoService: ExampleTodoService;
}

export async function createRouter(options: RouterOptions): Promise<express.Router> {
  const { logger, todoService } = options;
  const router = Router();
  router.use(express.json());

  router.get('/health', (_, response) => {
    logger.info('PONG!');
    response.json({ status: 'ok' });
  });

  router.get('/todos', async (_req, response) => {
    response.json(await todoService.listTodos());
  });

  router.post('/todos', async (request, response) => {
    response.json(await todoService.createTodo(request.body));
  });

  return router;
}
`)
	writeFile(t, filepath.Join(root, "src", "router.test.ts"), "describe('createRouter', () => {});\n")

	writeFile(t, filepath.Join(root, "src", "plugin.ts"), `import { coreServices, createBackendPlugin } from '@portalis/backend';
import { createRouter } from './router';
import { createExampleTodoService } from './services/ExampleTodoService';

export const plugin = createBackendPlugin({
  id: '`+id+`',
  register(env) {
    env.registerInit({
      deps: {
        logger: coreServices.logger,
        http: coreServices.httpRouter,
      },
      async init({ logger, http }) {
        const todoService = await createExampleTodoService({
          logger,
        });
        http.use(
          await createRouter({
            logger,
            todoService,
          }),
        );
      },
    });
  },
});
`)
	writeFile(t, filepath.Join(root, "src", "index.ts"), "export { plugin } from './plugin';\n")

	writeFile(t, filepath.Join(root, "dev", "index.ts"), "// local dev harness\n")
	return root
}
